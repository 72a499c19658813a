package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"warpbench/interpolate"
)

// Load decodes the image file at path into a packed BGR image. It also
// returns the name of the decoded format.
func Load(path string) (interpolate.Image, string, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return interpolate.Image{}, "", fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return interpolate.Image{}, "", fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return FromImage(img), imgType, nil
}

// FromImage packs any image into a new BGR image. Alpha is dropped.
func FromImage(img image.Image) interpolate.Image {
	if bgr, ok := img.(*BGR); ok {
		out := interpolate.NewImage(bgr.Rows, bgr.Cols)
		for y := range bgr.Rows {
			copy(out.Row(y), bgr.Row(y))
		}
		return out
	}

	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	} else {
		rgba = rgba.SubImage(bounds).(*image.RGBA)
	}

	out := interpolate.NewImage(bounds.Dy(), bounds.Dx())
	for y := range out.Rows {
		src := rgba.Pix[y*rgba.Stride:]
		dst := out.Row(y)
		for x := range out.Cols {
			s := src[x*4 : x*4+4 : x*4+4]
			d := dst[x*interpolate.PixelSize : x*interpolate.PixelSize+interpolate.PixelSize]
			d[0], d[1], d[2] = s[2], s[1], s[0]
		}
	}
	return out
}
