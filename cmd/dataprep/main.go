package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kgeyst.com/dataprep/pkg/dataprep/api"
)

const (
	exitOK       = 0
	exitFailures = 1
	exitError    = 2
)

func main() {
	os.Exit(mainImpl(os.Args[1:]))
}

// mainImpl returns exitFailures if any file hit a fault; files with an unknown label don't count.
func mainImpl(args []string) int {
	config, err := parseConfig(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}
	logger := api.NewLogger(config)
	dataprep, err := api.NewAPI(config, logger)
	if err != nil {
		logger.Error("invalid configuration: " + err.Error())
		return exitError
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	report, err := dataprep.Run(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("run %s aborted: %s", dataprep.RunID(), err))
		return exitError
	}
	if report.HasFailures() {
		logger.Warn(fmt.Sprintf("%d file(s) could not be processed", report.FailureCount()))
		return exitFailures
	}
	return exitOK
}
