package input

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"warpbench/imageio"
	"warpbench/interpolate"
	"warpbench/sampling"
)

// Params selects the source image and the sampling grid shared by all
// commands.
type Params struct {
	Image           string `help:"Source image file. A synthetic test card is used when empty." group:"input"`
	SyntheticWidth  int    `help:"Width of the synthetic test card" default:"1920" group:"input"`
	SyntheticHeight int    `help:"Height of the synthetic test card" default:"1080" group:"input"`
	Width           int    `help:"Output width, derived from the aspect ratio when 0" default:"1280" group:"output"`
	Height          int    `help:"Output height, derived from the aspect ratio when 0" default:"720" group:"output"`
	Warp            bool   `help:"Rotate the sampling grid" default:"true" negatable:"" group:"output"`
}

// Check validates and normalizes the parameters. It is meant to be called
// from a command's Validate hook.
func (p *Params) Check() error {
	if p.Image != "" {
		imagePath, err := filepath.Abs(p.Image)
		var info os.FileInfo
		if err == nil {
			if info, err = os.Stat(imagePath); err == nil && info.IsDir() {
				err = fmt.Errorf("is a directory")
			}
		}
		if err != nil {
			return fmt.Errorf("invalid image path %q: %w", p.Image, err)
		}
		p.Image = imagePath
	} else if p.SyntheticWidth < sampling.MinInput.Width || p.SyntheticHeight < sampling.MinInput.Height {
		return fmt.Errorf("invalid synthetic size %dx%d", p.SyntheticWidth, p.SyntheticHeight)
	}

	switch {
	case p.Width < 0:
		return fmt.Errorf("invalid output width: %d", p.Width)
	case p.Height < 0:
		return fmt.Errorf("invalid output height: %d", p.Height)
	case p.Width == 0 && p.Height == 0:
		return fmt.Errorf("no output dimensions given")
	}
	return nil
}

// Setup is a loaded source image with its sampling coordinates.
type Setup struct {
	Source interpolate.Image
	Format string
	Output sampling.Size
	Coords interpolate.Coords
}

func (s Setup) InputSize() sampling.Size {
	return sampling.Size{Width: s.Source.Cols, Height: s.Source.Rows}
}

// Prepare loads the source and generates one coordinate per output pixel.
// The output width is rounded down to a multiple of multiple.
func (p *Params) Prepare(logger *slog.Logger, multiple int) (Setup, error) {
	var setup Setup
	if p.Image == "" {
		setup.Source = imageio.Synthetic(p.SyntheticHeight, p.SyntheticWidth)
		setup.Format = "synthetic"
	} else {
		var err error
		if setup.Source, setup.Format, err = imageio.Load(p.Image); err != nil {
			return Setup{}, err
		}
	}

	out, err := sampling.Fit(setup.InputSize(), p.Width, p.Height, multiple)
	if err != nil {
		return Setup{}, err
	}
	if out.Width != p.Width && p.Width != 0 {
		logger.Warn("output width rounded to batch width", "requested", p.Width, "width", out.Width,
			"multiple", multiple)
	}
	setup.Output = out
	setup.Coords = sampling.Generate(out, setup.InputSize(), p.Warp)

	logger.Info("input", "image", p.Image, "format", setup.Format,
		"size", fmt.Sprintf("%dx%d", setup.Source.Cols, setup.Source.Rows))
	logger.Info("output", "size", fmt.Sprintf("%dx%d", out.Width, out.Height), "warp", p.Warp)
	return setup, nil
}

// ParseKernels resolves kernel names. "all" selects every kernel and
// "best" the widest kernel native to this CPU.
func ParseKernels(names []string) ([]interpolate.Kernel, error) {
	var ks []interpolate.Kernel
	for _, name := range names {
		switch strings.ToLower(name) {
		case "all":
			ks = append(ks, interpolate.Kernels()...)
		case "best":
			ks = append(ks, interpolate.Best(0))
		default:
			k, err := interpolate.ParseKernel(name)
			if err != nil {
				return nil, err
			}
			ks = append(ks, k)
		}
	}
	return ks, nil
}

// BatchMultiple is the least common multiple of the kernels' batch widths.
func BatchMultiple(ks []interpolate.Kernel) int {
	m := 1
	for _, k := range ks {
		m = lcm(m, k.BatchWidth())
	}
	return m
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}
