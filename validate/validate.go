package validate

import (
	"errors"
	"fmt"
	"log/slog"

	"warpbench/interpolate"
	"warpbench/parallel"
)

var ErrMismatch = errors.New("output image not the same")

// MismatchError locates the first output pixel that differs from the
// reference by more than the tolerance.
type MismatchError struct {
	Name      string
	X, Y      int
	Want, Got interpolate.Pixel
	Tolerance int
}

func (e *MismatchError) Error() string {
	msg := fmt.Sprintf("pixels not equal at %dx%d: want %d %d %d, got %d %d %d (tolerance %d)",
		e.X, e.Y, e.Want.B, e.Want.G, e.Want.R, e.Got.B, e.Got.G, e.Got.R, e.Tolerance)
	if e.Name == "" {
		return msg
	}
	return e.Name + ": " + msg
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Compare checks got against gold pixel by pixel. It returns a
// *MismatchError for the first pixel with a channel differing by more than
// tolerance.
func Compare(gold, got interpolate.Image, tolerance int) error {
	if gold.Rows != got.Rows || gold.Cols != got.Cols {
		return fmt.Errorf("%w: size %dx%d, want %dx%d", ErrMismatch, got.Cols, got.Rows, gold.Cols, gold.Rows)
	}

	for y := range gold.Rows {
		for x := range gold.Cols {
			want := gold.At(y, x)
			have := got.At(y, x)
			if absDiff(want.B, have.B) > tolerance ||
				absDiff(want.G, have.G) > tolerance ||
				absDiff(want.R, have.R) > tolerance {
				return &MismatchError{X: x, Y: y, Want: want, Got: have, Tolerance: tolerance}
			}
		}
	}
	return nil
}

// Combination is one kernel run either single-threaded or on a pool.
type Combination struct {
	Kernel interpolate.Kernel
	Pool   *parallel.Pool
}

func (c Combination) Name() string {
	if c.Pool == nil {
		return c.Kernel.String() + " - single thread"
	}
	return c.Kernel.String() + " - multi thread"
}

func (c Combination) Run(src interpolate.Image, coords interpolate.Coords) (interpolate.Image, error) {
	return interpolate.Resample(c.Kernel, c.Pool, src, coords)
}

// Combinations lists every kernel single-threaded and, with a pool, multi
// threaded, in the order they are validated and benchmarked.
func Combinations(kernels []interpolate.Kernel, pool *parallel.Pool) []Combination {
	var combos []Combination
	for _, k := range kernels {
		combos = append(combos, Combination{Kernel: k})
		if pool != nil {
			combos = append(combos, Combination{Kernel: k, Pool: pool})
		}
	}
	return combos
}

// All runs the scalar kernel single-threaded as ground truth and checks
// every combination against it. The first failure is returned.
func All(logger *slog.Logger, combos []Combination, src interpolate.Image, coords interpolate.Coords) error {
	gold, err := interpolate.Resample(interpolate.Plain, nil, src, coords)
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}

	for _, c := range combos {
		if c.Kernel == interpolate.Plain && c.Pool == nil {
			continue
		}
		out, err := c.Run(src, coords)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Name(), err)
		}
		if err := Compare(gold, out, c.Kernel.Tolerance()); err != nil {
			var mismatch *MismatchError
			if errors.As(err, &mismatch) {
				mismatch.Name = c.Name()
				return mismatch
			}
			return fmt.Errorf("%s: %w", c.Name(), err)
		}
		logger.Debug("output matches reference", "combination", c.Name(), "tolerance", c.Kernel.Tolerance())
	}
	return nil
}
