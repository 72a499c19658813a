package interpolate

// 256-bit kernels. A 256-bit register is two 128-bit lanes and each lane
// carries one output pixel: its 4 neighbours widened to 16 bits and its
// 4 weights, duplicated across the lane halves, so a single multiply-add
// computes every channel sum of both pixels.

type (
	m256    [2]m128
	ps8     [2]ps4
	epi16x2 [2]epi16x8
)

const (
	avx2Batch   = 2
	avx2X4Batch = 4
)

// maskShuffleBG moves the blue and green channels of the four neighbours
// from packed 24 bpp to 16 bpc. The lane holds the top neighbours in bytes
// 0..7 and the bottom neighbours in bytes 8..15:
// (2 other bytes) rgb rgb | (2 other bytes) rgb rgb  ->  g g g g b b b b
var maskShuffleBG = [16]int8{
	// blue
	0, zeroed, 3, zeroed, 8, zeroed, 11, zeroed,
	// green
	1, zeroed, 4, zeroed, 9, zeroed, 12, zeroed,
}

// maskShuffleR0 does the same for red. The upper half of the lane is unused.
var maskShuffleR0 = [16]int8{
	// red
	2, zeroed, 5, zeroed, 10, zeroed, 13, zeroed,
	// unused
	zeroed, zeroed, zeroed, zeroed, zeroed, zeroed, zeroed, zeroed,
}

// gatherLane loads the top and bottom neighbour pairs of c into one lane.
func gatherLane(src Image, c Coord) m128 {
	off := neighbourhood(src, c)
	return setEpi64(load64(src.Data, off+src.Stride), load64(src.Data, off))
}

// widenLane splits a gathered lane into blue/green and red/zero 16-bit lanes.
func widenLane(pixels m128) (bg, r0 epi16x8) {
	return shuffleEpi8(pixels, &maskShuffleBG).epi16(), shuffleEpi8(pixels, &maskShuffleR0).epi16()
}

// avx2Weights calculates the weights of the 4 neighbours of two samples.
// The upper lane holds the weights of the second sample, the lower lane
// those of the first, both halves of a lane identical:
// w4 w3 w2 w1 w4 w3 w2 w1 (second) | w4 w3 w2 w1 w4 w3 w2 w1 (first)
func avx2Weights(c0, c1 Coord) epi16x2 {
	initial := ps8{setPS(0, 0, c0.Y, c0.X), setPS(0, 0, c1.Y, c1.X)}

	var weights epi16x2
	for l, v := range initial {
		floored := floorPS(v)
		fractional := subPS(v, floored)
		oneMinusFractional := subPS(set1PS(1), fractional)

		// (1-y) y (1-x) x
		combined := unpackloPS(fractional, oneMinusFractional)
		// x (1-x) x (1-x)
		weightsX := shufflePS(combined, combined, mmShuffle(0, 1, 0, 1))
		// y y (1-y) (1-y)
		weightsY := shufflePS(combined, combined, mmShuffle(2, 2, 3, 3))

		w := mulPS(mulPS(weightsX, weightsY), set1PS(weightOne))

		// 0 0 0 0 w4 w3 w2 w1, then copy the low half to the high half.
		wi := packsEpi32(balanceWeights(cvtpsEpi32(w)), epi32x4{})
		weights[l] = unpackloEpi64(wi, wi)
	}
	return weights
}

// interpolateLane finishes one pixel: multiply-add, horizontal add, divide
// by 256 and narrow to 8 bpc. The pixel is in the low three bytes.
func interpolateLane(bg, r0, weights epi16x8) uint32 {
	// g g b b
	rBG := maddEpi16(bg, weights)
	// _ _ r r
	rR0 := maddEpi16(r0, weights)

	// _ r g b, 32 bpc
	out := haddEpi32(rBG, rR0)

	out = srliEpi32(out, 8)

	// 32 bpc => 16 bpc => 8 bpc
	return packusEpi16(packusEpi32(out, epi32x4{}), epi16x8{}).low32()
}

// avx2Pixels interpolates two samples held in one 256-bit register.
func avx2Pixels(src Image, c0, c1 Coord, stored []uint32) {
	pixels := m256{gatherLane(src, c0), gatherLane(src, c1)}
	weights := avx2Weights(c0, c1)
	for l, p := range pixels {
		bg, r0 := widenLane(p)
		stored[l] = interpolateLane(bg, r0, weights[l])
	}
}

// avx2Interpolate computes 2 adjacent output pixels.
func avx2Interpolate(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := coords[:avx2Batch:avx2Batch]
	var stored [avx2Batch]uint32
	avx2Pixels(src, c[0], c[1], stored[:])
	storePixels(dst, stored[:], canOverwrite)
}

// avx2X4Interpolate computes 4 adjacent output pixels with two registers.
func avx2X4Interpolate(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := coords[:avx2X4Batch:avx2X4Batch]
	var stored [avx2X4Batch]uint32
	avx2Pixels(src, c[0], c[1], stored[0:2])
	avx2Pixels(src, c[2], c[3], stored[2:4])
	storePixels(dst, stored[:], canOverwrite)
}
