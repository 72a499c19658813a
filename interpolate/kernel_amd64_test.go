//go:build amd64 && !noasm

package interpolate

import (
	"math"
	"testing"
)

func TestReadable(t *testing.T) {
	src := NewImage(5, 7)
	nan := float32(math.NaN())
	tests := []struct {
		name string
		c    Coord
		want bool
	}{
		{"origin", Coord{}, true},
		{"inside", Coord{Y: 3.75, X: 5.5}, true},
		{"right edge", Coord{Y: 1, X: 6}, false},
		{"bottom edge", Coord{Y: 4, X: 1}, false},
		{"negative", Coord{Y: -0.25, X: 1}, false},
		{"nan", Coord{Y: 1, X: nan}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readable(src, []Coord{{Y: 1, X: 1}, tt.c}); got != tt.want {
				t.Errorf("readable(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}

	short := src
	short.Data = short.Data[:len(short.Data)-1]
	if readable(short, []Coord{{Y: 1, X: 1}}) {
		t.Error("readable accepted a truncated buffer")
	}
}

func TestAssemblyInstalled(t *testing.T) {
	for k, fn := range asmKernels() {
		if fn == nil {
			t.Errorf("%s: nil assembly kernel", k)
		}
		if !noSimd() && !k.Native() {
			t.Errorf("%s: assembly available but not installed", k)
		}
	}
}
