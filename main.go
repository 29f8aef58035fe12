package main

import (
	"fmt"
	"os"

	"wraproids/display"
	"wraproids/internal/cli"
	"wraproids/internal/perf"
)

func main() {
	flags, logger, world, err := cli.Setup("wraproids", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := display.Run(world, logger, perf.NewMonitor(flags.ProfileDir, logger), flags.Fullscreen); err != nil {
		logger.Fatal().Err(err).Msg("display")
	}
}
