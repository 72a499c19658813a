package interpolate

import (
	"errors"
	"fmt"
)

// PixelSize is the number of bytes of one packed BGR pixel.
const PixelSize = 3

var ErrInvalidImage = errors.New("invalid image")

// Pixel is one packed 24-bit pixel. Channel order is fixed: blue, green, red.
type Pixel struct {
	B, G, R uint8
}

// Image is a view of a row-major packed BGR24 buffer. The view does not own
// Data: the pixel at (y, x) starts at Data[y*Stride + x*PixelSize].
type Image struct {
	Rows   int
	Cols   int
	Stride int
	Data   []byte
}

// NewImage allocates a tightly packed image.
func NewImage(rows, cols int) Image {
	return Image{
		Rows:   rows,
		Cols:   cols,
		Stride: cols * PixelSize,
		Data:   make([]byte, rows*cols*PixelSize),
	}
}

// Validate checks the view against its backing buffer.
func (m Image) Validate() error {
	switch {
	case m.Rows <= 0 || m.Cols <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidImage, m.Cols, m.Rows)
	case m.Stride < m.Cols*PixelSize:
		return fmt.Errorf("%w: stride %d shorter than row of %d pixels", ErrInvalidImage, m.Stride, m.Cols)
	case len(m.Data) < (m.Rows-1)*m.Stride+m.Cols*PixelSize:
		return fmt.Errorf("%w: buffer of %d bytes too small for %dx%d with stride %d",
			ErrInvalidImage, len(m.Data), m.Cols, m.Rows, m.Stride)
	}
	return nil
}

func (m Image) Offset(y, x int) int {
	return y*m.Stride + x*PixelSize
}

func (m Image) At(y, x int) Pixel {
	i := m.Offset(y, x)
	p := m.Data[i : i+PixelSize : i+PixelSize]
	return Pixel{B: p[0], G: p[1], R: p[2]}
}

func (m Image) Set(y, x int, px Pixel) {
	i := m.Offset(y, x)
	p := m.Data[i : i+PixelSize : i+PixelSize]
	p[0], p[1], p[2] = px.B, px.G, px.R
}

// Row returns the pixel bytes of row y, without trailing padding.
func (m Image) Row(y int) []byte {
	i := y * m.Stride
	return m.Data[i : i+m.Cols*PixelSize]
}

// Coord is a fractional sampling position in the source image.
type Coord struct {
	Y float32
	X float32
}

// Coords holds one sampling position per output pixel, row-major.
type Coords struct {
	Rows int
	Cols int
	Data []Coord
}

func NewCoords(rows, cols int) Coords {
	return Coords{Rows: rows, Cols: cols, Data: make([]Coord, rows*cols)}
}

func (c Coords) Row(y int) []Coord {
	return c.Data[y*c.Cols : (y+1)*c.Cols]
}

func (c Coords) At(y, x int) Coord {
	return c.Data[y*c.Cols+x]
}

func (c Coords) Set(y, x int, v Coord) {
	c.Data[y*c.Cols+x] = v
}
