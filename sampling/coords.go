package sampling

import (
	"math"

	"golang.org/x/image/math/f64"

	"warpbench/interpolate"
)

// Size is an image size in pixels.
type Size struct {
	Width  int
	Height int
}

// Grid maps every output pixel linearly onto the input image:
// output (x, y) samples input (x/out.W*in.W, y/out.H*in.H).
func Grid(out, in Size) interpolate.Coords {
	coords := interpolate.NewCoords(out.Height, out.Width)
	for y := range out.Height {
		ySample := float32(y) / float32(out.Height) * float32(in.Height)
		row := coords.Row(y)
		for x := range row {
			xSample := float32(x) / float32(out.Width) * float32(in.Width)
			row[x] = interpolate.Coord{Y: ySample, X: xSample}
		}
	}
	return coords
}

// DefaultWarp rotates by 3.14/10 radians and shifts the field by 100 pixels
// right and half the output height up.
func DefaultWarp(out Size) f64.Aff3 {
	angle := 3.14 / 10.0
	sin, cos := math.Sincos(angle)
	return f64.Aff3{
		cos, -sin, 100,
		sin, cos, -float64(out.Height) / 2,
	}
}

// Warp applies an affine warp to the coordinate field itself, as an image
// warp with bilinear filtering would: the result at (x, y) blends the four
// field values around the position m maps (x, y) to. Neighbours outside the
// field count as the coordinate (0, 0).
func Warp(c interpolate.Coords, m f64.Aff3) interpolate.Coords {
	inv, ok := invert(m)
	if !ok {
		return interpolate.NewCoords(c.Rows, c.Cols)
	}
	at := func(y, x int) (float64, float64) {
		if x < 0 || y < 0 || x >= c.Cols || y >= c.Rows {
			return 0, 0
		}
		v := c.At(y, x)
		return float64(v.Y), float64(v.X)
	}
	warped := interpolate.NewCoords(c.Rows, c.Cols)
	for y := range c.Rows {
		row := warped.Row(y)
		for x := range row {
			fx, fy := float64(x), float64(y)
			sx := inv[0]*fx + inv[1]*fy + inv[2]
			sy := inv[3]*fx + inv[4]*fy + inv[5]
			x0, y0 := math.Floor(sx), math.Floor(sy)
			if x0 < -1 || y0 < -1 || x0 >= float64(c.Cols) || y0 >= float64(c.Rows) {
				continue
			}
			ax, ay := sx-x0, sy-y0
			ix, iy := int(x0), int(y0)

			var wy, wx float64
			for _, n := range [4]struct {
				dy, dx int
				w      float64
			}{
				{0, 0, (1 - ax) * (1 - ay)},
				{0, 1, ax * (1 - ay)},
				{1, 0, (1 - ax) * ay},
				{1, 1, ax * ay},
			} {
				if n.w == 0 {
					continue
				}
				vy, vx := at(iy+n.dy, ix+n.dx)
				wy += n.w * vy
				wx += n.w * vx
			}
			row[x] = interpolate.Coord{Y: float32(wy), X: float32(wx)}
		}
	}
	return warped
}

// invert returns the inverse of an affine transform, with ok false when m
// is singular. A warp maps source to destination, so the destination
// positions are looked up through the inverse.
func invert(m f64.Aff3) (f64.Aff3, bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return f64.Aff3{}, false
	}
	a, b := m[4]/det, -m[1]/det
	d, e := -m[3]/det, m[0]/det
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}, true
}

// Clamp keeps every coordinate in [0, in-1) on both axes, so the
// neighbours at floor+1 always exist in the input image.
func Clamp(c interpolate.Coords, in Size) {
	maxY := math.Nextafter32(float32(in.Height-1), 0)
	maxX := math.Nextafter32(float32(in.Width-1), 0)
	for i, v := range c.Data {
		c.Data[i] = interpolate.Coord{
			Y: max(0, min(maxY, v.Y)),
			X: max(0, min(maxX, v.X)),
		}
	}
}

// Generate produces one sampling coordinate per output pixel for an input
// of size in, optionally rotated by DefaultWarp. Every coordinate
// satisfies the kernels' bounds requirement.
func Generate(out, in Size, warp bool) interpolate.Coords {
	coords := Grid(out, in)
	if warp {
		coords = Warp(coords, DefaultWarp(out))
	}
	Clamp(coords, in)
	return coords
}
