package warp

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/alecthomas/kong"

	"warpbench/imageio"
	"warpbench/input"
	"warpbench/interpolate"
	"warpbench/parallel"
)

type CLICmd struct {
	input.Params
	Output       string `help:"Destination file" required:"" short:"o"`
	Format       string `help:"Output format, guessed from the destination extension when empty"`
	Kernel       string `help:"Kernel to run (best or a kernel name)" default:"best"`
	SingleThread bool   `help:"Run on the calling goroutine instead of the worker pool"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if _, err := input.ParseKernels([]string{c.Kernel}); err != nil {
		return err
	}

	dest, err := filepath.Abs(c.Output)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Output, err)
	}
	if info, err := os.Stat(filepath.Dir(dest)); err != nil || !info.IsDir() {
		return fmt.Errorf("invalid output folder %q", filepath.Dir(dest))
	}
	c.Output = dest

	if c.Format == "" {
		c.Format = imageio.FormatFromPath(dest)
	}
	if !slices.Contains(imageio.Formats, c.Format) {
		return fmt.Errorf("unsupported output format: %q", c.Format)
	}
	return c.Params.Check()
}

func (c *CLICmd) Run(pool *parallel.Pool, logger *slog.Logger) error {
	kernels, err := input.ParseKernels([]string{c.Kernel})
	if err != nil {
		return err
	}
	kernel := kernels[0]
	setup, err := c.Prepare(logger, kernel.BatchWidth())
	if err != nil {
		return err
	}

	if c.SingleThread {
		pool = nil
	}
	out, err := interpolate.Resample(kernel, pool, setup.Source, setup.Coords)
	if err != nil {
		return fmt.Errorf("%s: %w", kernel, err)
	}

	if err := imageio.Save(out, c.Format, c.Output); err != nil {
		return err
	}
	logger.Info("written", "file", c.Output, "format", c.Format, "kernel", kernel)
	return nil
}
