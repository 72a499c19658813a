package interpolate

import (
	"math/rand/v2"
	"testing"
)

func checkWeights(t *testing.T, fx, fy float32, w Weights) {
	t.Helper()
	var sum int32
	for i, v := range w {
		if v < 0 || v > weightOne {
			t.Errorf("weights(%v, %v)[%d] = %d, want in [0, 256]", fx, fy, i, v)
		}
		sum += v
	}
	if sum != weightOne {
		t.Errorf("weights(%v, %v) = %v sum to %d, want 256", fx, fy, w, sum)
	}
}

func TestBilinearWeightsSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100000 {
		fx, fy := rng.Float32(), rng.Float32()
		checkWeights(t, fx, fy, BilinearWeights(fx, fy))
	}

	// Fractions on the rounding boundaries of each weight.
	for i := range 1024 {
		for j := range 64 {
			fx := float32(i) / 1024
			fy := float32(j) / 64
			checkWeights(t, fx, fy, BilinearWeights(fx, fy))
		}
	}
}

func TestBilinearWeightsExact(t *testing.T) {
	tests := []struct {
		fx, fy float32
		want   Weights
	}{
		{0, 0, Weights{256, 0, 0, 0}},
		{0.5, 0, Weights{128, 128, 0, 0}},
		{0, 0.5, Weights{128, 0, 128, 0}},
		{0.5, 0.5, Weights{64, 64, 64, 64}},
		{0.25, 0.75, Weights{48, 16, 144, 48}},
	}
	for _, tt := range tests {
		if got := BilinearWeights(tt.fx, tt.fy); got != tt.want {
			t.Errorf("BilinearWeights(%v, %v) = %v, want %v", tt.fx, tt.fy, got, tt.want)
		}
	}
}

func TestBalanceWeights(t *testing.T) {
	tests := []struct {
		in, want epi32x4
	}{
		{epi32x4{64, 64, 64, 64}, epi32x4{64, 64, 64, 64}},
		{epi32x4{125, 54, 54, 21}, epi32x4{127, 54, 54, 21}},
		{epi32x4{20, 90, 80, 68}, epi32x4{20, 88, 80, 68}},
	}
	for _, tt := range tests {
		if got := balanceWeights(tt.in); got != tt.want {
			t.Errorf("balanceWeights(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSplitCoord(t *testing.T) {
	tests := []struct {
		v     float32
		whole int
		frac  float32
	}{
		{0, 0, 0},
		{1.5, 1, 0.5},
		{3.25, 3, 0.25},
		{7, 7, 0},
	}
	for _, tt := range tests {
		whole, frac := splitCoord(tt.v)
		if whole != tt.whole || frac != tt.frac {
			t.Errorf("splitCoord(%v) = %d, %v, want %d, %v", tt.v, whole, frac, tt.whole, tt.frac)
		}
	}
}
