package imageio

import "warpbench/interpolate"

// Synthetic returns a deterministic test card: blue grows along x, green
// along y, and red follows a coarse checkerboard, so both smooth gradients
// and hard edges get sampled.
func Synthetic(rows, cols int) interpolate.Image {
	img := interpolate.NewImage(rows, cols)
	for y := range rows {
		for x := range cols {
			var r uint8 = 40
			if (x/16+y/16)%2 == 0 {
				r = 220
			}
			img.Set(y, x, interpolate.Pixel{
				B: uint8(x * 255 / max(1, cols-1)),
				G: uint8(y * 255 / max(1, rows-1)),
				R: r,
			})
		}
	}
	return img
}
