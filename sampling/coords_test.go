package sampling

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"

	"warpbench/interpolate"
)

func TestGrid(t *testing.T) {
	coords := Grid(Size{Width: 4, Height: 2}, Size{Width: 8, Height: 4})
	if coords.Rows != 2 || coords.Cols != 4 {
		t.Fatalf("Grid size = %dx%d, want 4x2", coords.Cols, coords.Rows)
	}
	for y := range coords.Rows {
		for x := range coords.Cols {
			want := interpolate.Coord{Y: float32(2 * y), X: float32(2 * x)}
			if got := coords.At(y, x); got != want {
				t.Errorf("Grid at %dx%d = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	in := Size{Width: 10, Height: 5}
	coords := interpolate.NewCoords(1, 4)
	coords.Data[0] = interpolate.Coord{Y: -3, X: -0.5}
	coords.Data[1] = interpolate.Coord{Y: 4, X: 9}
	coords.Data[2] = interpolate.Coord{Y: 100, X: 100}
	coords.Data[3] = interpolate.Coord{Y: 2.5, X: 7.25}
	Clamp(coords, in)

	maxY := math.Nextafter32(4, 0)
	maxX := math.Nextafter32(9, 0)
	want := []interpolate.Coord{
		{Y: 0, X: 0},
		{Y: maxY, X: maxX},
		{Y: maxY, X: maxX},
		{Y: 2.5, X: 7.25},
	}
	for i, w := range want {
		if coords.Data[i] != w {
			t.Errorf("Clamp coordinate %d = %v, want %v", i, coords.Data[i], w)
		}
	}
}

func TestWarpIdentity(t *testing.T) {
	coords := Grid(Size{Width: 6, Height: 3}, Size{Width: 12, Height: 9})
	identity := f64.Aff3{1, 0, 0, 0, 1, 0}
	warped := Warp(coords, identity)
	for i := range coords.Data {
		if warped.Data[i] != coords.Data[i] {
			t.Errorf("identity warp moved coordinate %d: %v, want %v", i, warped.Data[i], coords.Data[i])
		}
	}
}

func TestWarpTranslate(t *testing.T) {
	coords := Grid(Size{Width: 4, Height: 4}, Size{Width: 4, Height: 4})
	// Shift the field one pixel right: column 0 has no source.
	warped := Warp(coords, f64.Aff3{1, 0, 1, 0, 1, 0})
	for y := range 4 {
		if got := warped.At(y, 0); got != (interpolate.Coord{}) {
			t.Errorf("uncovered position 0x%d = %v, want zero coordinate", y, got)
		}
		for x := 1; x < 4; x++ {
			if got, want := warped.At(y, x), coords.At(y, x-1); got != want {
				t.Errorf("position %dx%d = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestWarpBlendsNeighbours(t *testing.T) {
	coords := Grid(Size{Width: 4, Height: 4}, Size{Width: 4, Height: 4})
	// Half a pixel right: every output lies between two field values.
	warped := Warp(coords, f64.Aff3{1, 0, 0.5, 0, 1, 0})
	for y := range 4 {
		if got, want := warped.At(y, 2), (interpolate.Coord{Y: float32(y), X: 1.5}); got != want {
			t.Errorf("position 2x%d = %v, want %v", y, got, want)
		}
	}
	// Column 0 blends the first column with the zero coordinate outside.
	if got, want := warped.At(2, 0), (interpolate.Coord{Y: 1, X: 0}); got != want {
		t.Errorf("position 0x2 = %v, want %v", got, want)
	}
	// Far outside the field.
	far := Warp(coords, f64.Aff3{1, 0, 10, 0, 1, 0})
	for i, c := range far.Data {
		if c != (interpolate.Coord{}) {
			t.Fatalf("coordinate %d = %v, want zero coordinate", i, c)
		}
	}
}

func TestInvert(t *testing.T) {
	m := DefaultWarp(Size{Width: 1280, Height: 720})
	inv, ok := invert(m)
	if !ok {
		t.Fatal("DefaultWarp reported singular")
	}
	for _, p := range [][2]float64{{0, 0}, {100, 50}, {-30, 700}} {
		x := m[0]*p[0] + m[1]*p[1] + m[2]
		y := m[3]*p[0] + m[4]*p[1] + m[5]
		bx := inv[0]*x + inv[1]*y + inv[2]
		by := inv[3]*x + inv[4]*y + inv[5]
		if math.Abs(bx-p[0]) > 1e-9 || math.Abs(by-p[1]) > 1e-9 {
			t.Errorf("inverse maps %v back to (%g, %g)", p, bx, by)
		}
	}

	if _, ok := invert(f64.Aff3{1, 2, 0, 2, 4, 0}); ok {
		t.Error("invert of a singular transform reported ok")
	}
}

func TestGenerateInBounds(t *testing.T) {
	in := Size{Width: 64, Height: 48}
	for _, warp := range []bool{false, true} {
		coords := Generate(Size{Width: 80, Height: 60}, in, warp)
		for i, c := range coords.Data {
			if c.X < 0 || c.Y < 0 || c.X >= float32(in.Width-1) || c.Y >= float32(in.Height-1) {
				t.Fatalf("warp %v: coordinate %d = %v outside [0, %d)x[0, %d)", warp, i, c, in.Width-1, in.Height-1)
			}
		}
	}
}
