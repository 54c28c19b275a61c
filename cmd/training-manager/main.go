package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/laperlej/galaxy-training/internal/app"
	"github.com/laperlej/galaxy-training/internal/config"
	"github.com/laperlej/galaxy-training/internal/logger"
	"github.com/laperlej/galaxy-training/internal/manager"
	"github.com/laperlej/galaxy-training/internal/schedule"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: training-manager [flags] <config-file>")
	flag.PrintDefaults()
}

func main() {
	var opts app.Options
	flag.Usage = usage
	flag.StringVar(&opts.Date, "date", "", "resolve for this date (YYYY-MM-DD) instead of today")
	flag.BoolVar(&opts.FirstMatch, "first-match", false, "when several groups cover the date, pick the first declared instead of failing")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "resolve and print the assignment without touching galaxy")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	opts.ConfigPath = flag.Arg(0)

	cfg, err := config.Load(!opts.DryRun)
	if err != nil {
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(cfg, log, opts).Run(ctx); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps each error kind to a distinct code so wrappers (cron,
// monitoring) can tell misconfiguration from ambiguity from server trouble.
func exitCode(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return 2
	case errors.Is(err, schedule.ErrMalformedDate):
		return 3
	case errors.Is(err, schedule.ErrInvalidWindow):
		return 4
	case errors.Is(err, schedule.ErrUnknownGroup):
		return 5
	case errors.Is(err, schedule.ErrInvalidEmail):
		return 6
	case errors.Is(err, schedule.ErrOverlap):
		return 7
	case errors.Is(err, schedule.ErrAmbiguousAssignment):
		return 8
	case errors.Is(err, manager.ErrUnknownUser):
		return 9
	default:
		return 1
	}
}
