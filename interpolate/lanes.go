package interpolate

import (
	"encoding/binary"
	"math"
)

// The vector kernels are written against a small model of a 128-bit SIMD
// register. Wider registers are arrays of these lanes: every operation used
// here works within a 128-bit lane, as the x86 instructions it mirrors do.
// Element 0 is the least significant element.

type (
	m128    [16]byte
	ps4     [4]float32
	epi32x4 [4]int32
	epi16x8 [8]int16
)

// zeroed marks a shuffle mask byte whose destination byte is cleared.
const zeroed = -1

// load64 reads 8 bytes little-endian starting at off. Near the end of the
// buffer the missing high bytes read as zero.
func load64(b []byte, off int) uint64 {
	if off+8 <= len(b) {
		return binary.LittleEndian.Uint64(b[off:])
	}
	var v uint64
	for i := 0; i < 8 && off+i < len(b); i++ {
		v |= uint64(b[off+i]) << (8 * i)
	}
	return v
}

// setEpi64 builds a lane from two 64-bit halves, lo in bytes 0..7.
func setEpi64(hi, lo uint64) m128 {
	var r m128
	binary.LittleEndian.PutUint64(r[0:8], lo)
	binary.LittleEndian.PutUint64(r[8:16], hi)
	return r
}

// loadl64 is a 64-bit load into the low half of a lane, upper half cleared.
func loadl64(b []byte, off int) m128 {
	return setEpi64(0, load64(b, off))
}

// shuffleEpi8 picks bytes of a by mask.
func shuffleEpi8(a m128, mask *[16]int8) m128 {
	var r m128
	for i, m := range mask {
		if m != zeroed {
			r[i] = a[m&15]
		}
	}
	return r
}

func unpackloEpi32(a, b m128) m128 {
	var r m128
	copy(r[0:4], a[0:4])
	copy(r[4:8], b[0:4])
	copy(r[8:12], a[4:8])
	copy(r[12:16], b[4:8])
	return r
}

// unpackloEpi8Zero zero-extends the low 8 bytes of a to 16-bit lanes.
func unpackloEpi8Zero(a m128) epi16x8 {
	var r epi16x8
	for i := range r {
		r[i] = int16(a[i])
	}
	return r
}

func (a m128) epi16() epi16x8 {
	var r epi16x8
	for i := range r {
		r[i] = int16(binary.LittleEndian.Uint16(a[2*i:]))
	}
	return r
}

func (a m128) low32() uint32 {
	return binary.LittleEndian.Uint32(a[0:4])
}

func setPS(w, z, y, x float32) ps4 {
	return ps4{x, y, z, w}
}

func floorPS(a ps4) ps4 {
	for i, v := range a {
		a[i] = float32(math.Floor(float64(v)))
	}
	return a
}

func subPS(a, b ps4) ps4 {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

func mulPS(a, b ps4) ps4 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func set1PS(v float32) ps4 {
	return ps4{v, v, v, v}
}

func unpackloPS(a, b ps4) ps4 {
	return ps4{a[0], b[0], a[1], b[1]}
}

func movelhPS(a, b ps4) ps4 {
	return ps4{a[0], a[1], b[0], b[1]}
}

// mmShuffle packs four 2-bit selectors, highest destination element first.
func mmShuffle(z, y, x, w uint8) uint8 {
	return z<<6 | y<<4 | x<<2 | w
}

// shufflePS takes the low two results from a and the high two from b.
func shufflePS(a, b ps4, imm uint8) ps4 {
	return ps4{a[imm&3], a[imm>>2&3], b[imm>>4&3], b[imm>>6&3]}
}

// cvtpsEpi32 converts with round-to-nearest-even, the default MXCSR mode.
func cvtpsEpi32(a ps4) epi32x4 {
	var r epi32x4
	for i, v := range a {
		r[i] = int32(math.RoundToEven(float64(v)))
	}
	return r
}

func saturateInt16(v int32) int16 {
	return int16(max(math.MinInt16, min(math.MaxInt16, v)))
}

func saturateUint16(v int32) uint16 {
	return uint16(max(0, min(math.MaxUint16, v)))
}

func saturateUint8(v int16) uint8 {
	return uint8(max(0, min(math.MaxUint8, v)))
}

// packsEpi32 narrows a then b to signed 16 bits with saturation.
func packsEpi32(a, b epi32x4) epi16x8 {
	var r epi16x8
	for i := range 4 {
		r[i] = saturateInt16(a[i])
		r[i+4] = saturateInt16(b[i])
	}
	return r
}

// packusEpi32 narrows a then b to unsigned 16 bits with saturation.
func packusEpi32(a, b epi32x4) epi16x8 {
	var r epi16x8
	for i := range 4 {
		r[i] = int16(saturateUint16(a[i]))
		r[i+4] = int16(saturateUint16(b[i]))
	}
	return r
}

// packusEpi16 narrows signed 16-bit lanes of a then b to unsigned bytes.
func packusEpi16(a, b epi16x8) m128 {
	var r m128
	for i := range 8 {
		r[i] = saturateUint8(a[i])
		r[i+8] = saturateUint8(b[i])
	}
	return r
}

// unpackloEpi64 interleaves the low 64 bits of a and b.
func unpackloEpi64(a, b epi16x8) epi16x8 {
	return epi16x8{a[0], a[1], a[2], a[3], b[0], b[1], b[2], b[3]}
}

func unpackloEpi16(a, b epi16x8) epi16x8 {
	return epi16x8{a[0], b[0], a[1], b[1], a[2], b[2], a[3], b[3]}
}

// shuffleloEpi16 permutes the low four 16-bit lanes, the high four pass through.
func shuffleloEpi16(a epi16x8, imm uint8) epi16x8 {
	r := a
	for i := range 4 {
		r[i] = a[imm>>(2*i)&3]
	}
	return r
}

// shuffleEpi32 permutes the 32-bit elements of a.
func shuffleEpi32(a epi16x8, imm uint8) epi16x8 {
	var r epi16x8
	for i := range 4 {
		s := imm >> (2 * i) & 3
		r[2*i] = a[2*s]
		r[2*i+1] = a[2*s+1]
	}
	return r
}

// mulloEpi16 keeps the low 16 bits of each product.
func mulloEpi16(a, b epi16x8) epi16x8 {
	for i := range a {
		a[i] *= b[i]
	}
	return a
}

func addEpi16(a, b epi16x8) epi16x8 {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// srliEpi16 is a logical shift: lanes are treated as unsigned.
func srliEpi16(a epi16x8, n uint) epi16x8 {
	for i, v := range a {
		a[i] = int16(uint16(v) >> n)
	}
	return a
}

// maddEpi16 multiplies signed 16-bit lanes and adds adjacent products into
// 32-bit lanes.
func maddEpi16(a, b epi16x8) epi32x4 {
	var r epi32x4
	for i := range r {
		r[i] = int32(a[2*i])*int32(b[2*i]) + int32(a[2*i+1])*int32(b[2*i+1])
	}
	return r
}

// haddEpi32 adds adjacent pairs: the low half of the result comes from a,
// the high half from b.
func haddEpi32(a, b epi32x4) epi32x4 {
	return epi32x4{a[0] + a[1], a[2] + a[3], b[0] + b[1], b[2] + b[3]}
}

// srliEpi32 is a logical shift: lanes are treated as unsigned.
func srliEpi32(a epi32x4, n uint) epi32x4 {
	for i, v := range a {
		a[i] = int32(uint32(v) >> n)
	}
	return a
}

// storePixels writes one packed pixel per element of px, taken from the low
// three bytes of each word. Every pixel but the last is stored as a full
// 32-bit word: its fourth byte lands on the next pixel, which is stored
// afterwards. The last pixel is stored as a word only when canOverwrite
// says the byte after it will be rewritten by a later store or is padding.
func storePixels(dst []byte, px []uint32, canOverwrite bool) {
	last := len(px) - 1
	for i, v := range px[:last] {
		binary.LittleEndian.PutUint32(dst[i*PixelSize:], v)
	}
	off := last * PixelSize
	if canOverwrite {
		binary.LittleEndian.PutUint32(dst[off:], px[last])
		return
	}
	v := px[last]
	d := dst[off : off+PixelSize : off+PixelSize]
	d[0], d[1], d[2] = byte(v), byte(v>>8), byte(v>>16)
}
