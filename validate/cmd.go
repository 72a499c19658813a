package validate

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"warpbench/input"
	"warpbench/parallel"
)

type CLICmd struct {
	input.Params
	Kernels []string `help:"Kernels to check against the scalar reference (all, best, or kernel names)" default:"all"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if _, err := input.ParseKernels(c.Kernels); err != nil {
		return err
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

	combos := Combinations(kernels, pool)
	if err := All(logger, combos, setup.Source, setup.Coords); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	logger.Info("all outputs match reference", "combinations", len(combos))
	return nil
}
