package interpolate

import (
	"bytes"
	"testing"
)

func TestLoad64Tail(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tests := []struct {
		off  int
		want uint64
	}{
		{0, 0x0807060504030201},
		{2, 0x0a09080706050403},
		{4, 0x0a0908070605},
		{9, 0x0a},
	}
	for _, tt := range tests {
		if got := load64(b, tt.off); got != tt.want {
			t.Errorf("load64(b, %d) = %#x, want %#x", tt.off, got, tt.want)
		}
	}
}

func TestShufflePS(t *testing.T) {
	a := ps4{0, 1, 2, 3}
	b := ps4{10, 11, 12, 13}
	tests := []struct {
		imm  uint8
		want ps4
	}{
		{mmShuffle(0, 1, 0, 1), ps4{1, 0, 11, 10}},
		{mmShuffle(2, 2, 3, 3), ps4{3, 3, 12, 12}},
		{mmShuffle(1, 1, 1, 1), ps4{1, 1, 11, 11}},
		{0x44, ps4{0, 1, 10, 11}},
	}
	for _, tt := range tests {
		if got := shufflePS(a, b, tt.imm); got != tt.want {
			t.Errorf("shufflePS(%#x) = %v, want %v", tt.imm, got, tt.want)
		}
	}
}

func TestShuffleEpi8Widen(t *testing.T) {
	// top: tl=(1,2,3) tr=(4,5,6), bottom: bl=(7,8,9) br=(10,11,12)
	lane := m128{1, 2, 3, 4, 5, 6, 0xee, 0xee, 7, 8, 9, 10, 11, 12, 0xee, 0xee}
	bg, r0 := widenLane(lane)
	if want := (epi16x8{1, 4, 7, 10, 2, 5, 8, 11}); bg != want {
		t.Errorf("bg = %v, want %v", bg, want)
	}
	if want := (epi16x8{3, 6, 9, 12, 0, 0, 0, 0}); r0 != want {
		t.Errorf("r0 = %v, want %v", r0, want)
	}
}

func TestMaddHadd(t *testing.T) {
	a := epi16x8{1, 2, 3, 4, 5, 6, 7, 8}
	w := epi16x8{10, 20, 30, 40, 10, 20, 30, 40}
	if got, want := maddEpi16(a, w), (epi32x4{50, 250, 170, 530}); got != want {
		t.Errorf("maddEpi16 = %v, want %v", got, want)
	}
	if got, want := haddEpi32(epi32x4{1, 2, 3, 4}, epi32x4{5, 6, 7, 8}), (epi32x4{3, 7, 11, 15}); got != want {
		t.Errorf("haddEpi32 = %v, want %v", got, want)
	}
}

func TestPackSaturates(t *testing.T) {
	if got, want := packsEpi32(epi32x4{-40000, 40000, 256, 0}, epi32x4{}), (epi16x8{-32768, 32767, 256, 0}); got != want {
		t.Errorf("packsEpi32 = %v, want %v", got, want)
	}
	if got, want := packusEpi32(epi32x4{-1, 70000, 255, 0}, epi32x4{}), (epi16x8{0, -1, 255, 0}); got != want {
		t.Errorf("packusEpi32 = %v, want %v", got, want)
	}
	got := packusEpi16(epi16x8{-5, 300, 255, 17}, epi16x8{})
	if want := (m128{0, 255, 255, 17}); got != want {
		t.Errorf("packusEpi16 = %v, want %v", got, want)
	}
}

func TestMulloWraps(t *testing.T) {
	// 255*256 = 65280 does not fit a signed 16-bit lane but its low 16 bits
	// shifted right logically give back 255.
	got := srliEpi16(mulloEpi16(epi16x8{255}, epi16x8{256}), 8)
	if got[0] != 255 {
		t.Errorf("srli(mullo(255, 256), 8) = %d, want 255", got[0])
	}
}

func TestStorePixels(t *testing.T) {
	px := []uint32{0xaa030201, 0xbb060504}

	dst := bytes.Repeat([]byte{0xff}, 7)
	storePixels(dst, px, false)
	if want := []byte{1, 2, 3, 4, 5, 6, 0xff}; !bytes.Equal(dst, want) {
		t.Errorf("exact store = %v, want %v", dst, want)
	}

	dst = bytes.Repeat([]byte{0xff}, 7)
	storePixels(dst, px, true)
	if want := []byte{1, 2, 3, 4, 5, 6, 0xbb}; !bytes.Equal(dst, want) {
		t.Errorf("overwriting store = %v, want %v", dst, want)
	}

	// A 6-byte buffer has no room for a word at the last pixel.
	dst = make([]byte, 6)
	storePixels(dst, px, false)
	if want := []byte{1, 2, 3, 4, 5, 6}; !bytes.Equal(dst, want) {
		t.Errorf("exact store at end = %v, want %v", dst, want)
	}
}
