package sampling

import (
	"fmt"
	"math"
)

// MinInput is the smallest input the kernels can sample: every sample
// reads a 2x2 neighbourhood.
var MinInput = Size{Width: 2, Height: 2}

// Fit resolves a requested output size against an input of size in. A zero
// dimension is derived from the input aspect ratio. The width is rounded
// down to a multiple of multiple, the batch width of the kernels that will
// run on it.
func Fit(in Size, width, height, multiple int) (Size, error) {
	switch {
	case in.Width < MinInput.Width || in.Height < MinInput.Height:
		return Size{}, fmt.Errorf("input %dx%d smaller than %dx%d", in.Width, in.Height,
			MinInput.Width, MinInput.Height)
	case width < 0:
		return Size{}, fmt.Errorf("invalid output width: %d", width)
	case height < 0:
		return Size{}, fmt.Errorf("invalid output height: %d", height)
	case width == 0 && height == 0:
		return Size{}, fmt.Errorf("no output dimensions given")
	case multiple < 1:
		return Size{}, fmt.Errorf("invalid width multiple: %d", multiple)
	}

	srcAR := float64(in.Width) / float64(in.Height)
	destWidth := float64(width)
	destHeight := float64(height)
	if width == 0 {
		destWidth = math.Round(destHeight * srcAR)
	} else if height == 0 {
		destHeight = math.Round(destWidth / srcAR)
	}

	out := Size{
		Width:  int(destWidth) / multiple * multiple,
		Height: max(1, int(destHeight)),
	}
	if out.Width == 0 {
		return Size{}, fmt.Errorf("output width %d smaller than batch width %d", int(destWidth), multiple)
	}
	return out, nil
}
