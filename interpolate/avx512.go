package interpolate

// 512-bit kernels: four 128-bit lanes per register, one output pixel per
// lane, laid out as in the 256-bit kernels.

type (
	m512    [4]m128
	ps16    [4]ps4
	epi16x4 [4]epi16x8
)

const (
	avx512Batch   = 4
	avx512X8Batch = 8
)

// avx512Weights calculates the weights of the 4 neighbours of four samples,
// one sample per lane, each lane w4 w3 w2 w1 w4 w3 w2 w1.
func avx512Weights(c *[avx512Batch]Coord) epi16x4 {
	var initial ps16
	for l := range initial {
		initial[l] = setPS(0, 0, c[l].Y, c[l].X)
	}

	var weights epi16x4
	for l, v := range initial {
		floored := floorPS(v)
		fractional := subPS(v, floored)
		oneMinusFractional := subPS(set1PS(1), fractional)

		// Each lane: y (1-y) x (1-x), then x (1-x) x (1-x)
		x := unpackloPS(oneMinusFractional, fractional)
		x = shufflePS(x, x, 0x44)

		// Each lane: y y (1-y) (1-y)
		y := shufflePS(oneMinusFractional, fractional, mmShuffle(1, 1, 1, 1))

		w := mulPS(mulPS(x, y), set1PS(weightOne))

		wi := packsEpi32(balanceWeights(cvtpsEpi32(w)), epi32x4{})
		weights[l] = unpackloEpi64(wi, wi)
	}
	return weights
}

// avx512Pixels interpolates four samples held in one 512-bit register.
func avx512Pixels(src Image, c *[avx512Batch]Coord, stored []uint32) {
	var pixels m512
	for l := range pixels {
		pixels[l] = gatherLane(src, c[l])
	}
	weights := avx512Weights(c)
	for l, p := range pixels {
		bg, r0 := widenLane(p)
		stored[l] = interpolateLane(bg, r0, weights[l])
	}
}

// avx512Interpolate computes 4 adjacent output pixels.
func avx512Interpolate(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := (*[avx512Batch]Coord)(coords)
	var stored [avx512Batch]uint32
	avx512Pixels(src, c, stored[:])
	storePixels(dst, stored[:], canOverwrite)
}

// avx512X8Interpolate computes 8 adjacent output pixels with two registers.
func avx512X8Interpolate(src Image, coords []Coord, dst []byte, canOverwrite bool) {
	c := (*[avx512X8Batch]Coord)(coords)
	var stored [avx512X8Batch]uint32
	avx512Pixels(src, (*[avx512Batch]Coord)(c[0:4]), stored[0:4])
	avx512Pixels(src, (*[avx512Batch]Coord)(c[4:8]), stored[4:8])
	storePixels(dst, stored[:], canOverwrite)
}
