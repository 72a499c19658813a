package imageio

import (
	"image"
	"image/color"

	"warpbench/interpolate"
)

// BGR adapts a packed BGR image to image.Image so it can be encoded.
type BGR struct {
	interpolate.Image
}

func (b *BGR) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *BGR) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Cols, b.Rows)
}

func (b *BGR) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	p := b.Image.At(y, x)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF}
}

// Opaque reports that every pixel is fully opaque.
func (b *BGR) Opaque() bool {
	return true
}
