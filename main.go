package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"warpbench/bench"
	"warpbench/interpolate"
	"warpbench/parallel"
	"warpbench/validate"
	"warpbench/warp"
)

type cli struct {
	Verbose bool `help:"Log debug messages" short:"v"`
	Threads int  `help:"Worker threads for multi thread runs, 0 for one per CPU" default:"0" env:"WARPBENCH_THREADS"`

	Validate validate.CLICmd `cmd:"" help:"Check every kernel against the scalar reference"`
	Bench    bench.CLICmd    `cmd:"" help:"Validate, then time every kernel single and multi threaded"`
	Warp     warp.CLICmd     `cmd:"" help:"Resample an image with one kernel and save the result"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("warpbench"),
		kong.Description("Bilinear resampling of packed BGR images with scalar and SIMD-style kernels."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	interpolate.SetLogger(logger)

	pool := parallel.Start(c.Threads)
	logger.Debug("running", "command", kctx.Command(), "workers", pool.Size(), "level", interpolate.Detect())

	err := kctx.Run(pool, logger)
	pool.Wait(true)
	kctx.FatalIfErrorf(err)
}
