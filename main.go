package main

import (
	"os"

	"github.com/go-kit/log/level"
)

func main() {
	logger := newLogger(os.Stderr)
	if err := newApp(os.Stdout, logger).Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "simulation failed", "err", err)
		os.Exit(1)
	}
}
