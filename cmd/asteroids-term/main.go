package main

import (
	"fmt"
	"os"

	"wraproids/internal/cli"
	"wraproids/internal/perf"
	"wraproids/terminal"
)

func main() {
	flags, logger, world, err := cli.Setup("asteroids-term", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := terminal.Run(world, logger, perf.NewMonitor(flags.ProfileDir, logger)); err != nil {
		logger.Fatal().Err(err).Msg("terminal")
	}
}
