package bench

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/alecthomas/kong"

	"warpbench/input"
	"warpbench/interpolate"
	"warpbench/parallel"
	"warpbench/validate"
)

type CLICmd struct {
	input.Params
	Kernels    []string      `help:"Kernels to benchmark (all, best, or kernel names)" default:"all"`
	MinTime    time.Duration `help:"Minimum measuring time per combination" default:"2s"`
	NoValidate bool          `help:"Skip checking outputs against the scalar reference first"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if _, err := input.ParseKernels(c.Kernels); err != nil {
		return err
	}
	if c.MinTime <= 0 {
		return fmt.Errorf("invalid minimum time: %s", c.MinTime)
	}
	return c.Params.Check()
}

func (c *CLICmd) Run(pool *parallel.Pool, logger *slog.Logger) error {
	kernels, err := input.ParseKernels(c.Kernels)
	if err != nil {
		return err
	}
	setup, err := c.Prepare(logger, input.BatchMultiple(kernels))
	if err != nil {
		return err
	}

	combos := validate.Combinations(kernels, pool)
	if !c.NoValidate {
		if err := validate.All(logger, combos, setup.Source, setup.Coords); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	logger.Info("cpu", "numCPU", runtime.NumCPU(), "workers", pool.Size(), "level", interpolate.Detect())

	for _, combo := range combos {
		runner, err := interpolate.NewRunner(combo.Kernel, setup.Output.Width)
		if err != nil {
			return fmt.Errorf("%s: %w", combo.Name(), err)
		}
		dst := interpolate.NewImage(setup.Output.Height, setup.Output.Width)
		// Run checks its inputs on every call; a first run that succeeds
		// means every measured run does too.
		if err := runner.Run(combo.Pool, setup.Source, setup.Coords, dst); err != nil {
			return fmt.Errorf("%s: %w", combo.Name(), err)
		}
		res := Measure(combo.Name(), func() {
			_ = runner.Run(combo.Pool, setup.Source, setup.Coords, dst)
		}, c.MinTime)
		logger.Info("benchmark", "name", res.Name, "iterations", res.Iterations,
			"perOp", res.PerOp(), "native", combo.Kernel.Native())
	}
	return nil
}
