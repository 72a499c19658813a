package interpolate

import (
	"fmt"

	"warpbench/parallel"
)

// Runner drives one kernel over output rows. It is built once per output
// width, which it has checked against the kernel's batch width, and holds
// no state between calls: it may be shared by any number of goroutines.
type Runner struct {
	kernel Kernel
	batch  int
	fn     batchFunc
}

// NewRunner checks that k can process rows of cols pixels. A width that is
// not a multiple of the batch width is a configuration error, returned
// before any pixel is written.
func NewRunner(k Kernel, cols int) (*Runner, error) {
	if !k.valid() {
		return nil, fmt.Errorf("unknown kernel %d", int(k))
	}
	info := kernels[k]
	if cols <= 0 || cols%info.batch != 0 {
		return nil, &BatchWidthError{Kernel: k, Cols: cols, Multiple: info.batch}
	}
	return &Runner{kernel: k, batch: info.batch, fn: info.fn}, nil
}

func (r *Runner) Kernel() Kernel {
	return r.kernel
}

// Rows interpolates output rows [y0, y1) of dst. The last batch of the
// range is the only one told it may not overwrite the byte past its last
// pixel: that byte may belong to the next range, owned by another worker,
// or lie past the end of the buffer.
func (r *Runner) Rows(src Image, coords Coords, dst Image, y0, y1 int) {
	step := r.batch
	fn := r.fn
	for y := y0; y < y1; y++ {
		row := coords.Row(y)
		base := y * dst.Stride
		lastRow := y == y1-1
		for x := 0; x < dst.Cols; x += step {
			canOverwrite := !lastRow || x+step != dst.Cols
			fn(src, row[x:x+step:x+step], dst.Data[base+x*PixelSize:], canOverwrite)
		}
	}
}

func (r *Runner) check(src Image, coords Coords, dst Image) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if coords.Rows != dst.Rows || coords.Cols != dst.Cols || len(coords.Data) < coords.Rows*coords.Cols {
		return fmt.Errorf("%w: %dx%d coordinates for %dx%d output",
			ErrInvalidImage, coords.Cols, coords.Rows, dst.Cols, dst.Rows)
	}
	if dst.Cols%r.batch != 0 {
		return &BatchWidthError{Kernel: r.kernel, Cols: dst.Cols, Multiple: r.batch}
	}
	return nil
}

// Run interpolates all of dst. With a nil pool, or a pool of one worker,
// rows are processed on the calling goroutine; otherwise they are split
// into row ranges run concurrently on pool.
func (r *Runner) Run(pool *parallel.Pool, src Image, coords Coords, dst Image) error {
	parts := 1
	if pool != nil {
		parts = pool.Size()
	}
	return r.RunParts(pool, src, coords, dst, parts)
}

// RunParts is Run with an explicit number of row ranges.
func (r *Runner) RunParts(pool *parallel.Pool, src Image, coords Coords, dst Image, parts int) error {
	if err := r.check(src, coords, dst); err != nil {
		return err
	}
	if pool == nil || parts <= 1 {
		r.Rows(src, coords, dst, 0, dst.Rows)
		return nil
	}
	pool.ForRanges(parallel.Split(dst.Rows, parts), func(y0, y1 int) {
		r.Rows(src, coords, dst, y0, y1)
	})
	return nil
}
