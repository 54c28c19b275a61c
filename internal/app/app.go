package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/laperlej/galaxy-training/internal/config"
	"github.com/laperlej/galaxy-training/internal/galaxy"
	"github.com/laperlej/galaxy-training/internal/manager"
	"github.com/laperlej/galaxy-training/internal/schedule"
)

// Options are the per-invocation knobs set by the CLI.
type Options struct {
	ConfigPath string
	Date       string // reference date override, YYYY-MM-DD; empty means today
	FirstMatch bool   // resolve conflicts by declaration order instead of failing
	DryRun     bool   // resolve and print, skip the Galaxy sync
}

// App runs one resolution: load schedule, validate, resolve, assign, emit,
// and unless dry-run, push the assignment to Galaxy.
type App struct {
	cfg  config.Config
	log  *zap.Logger
	opts Options
	api  galaxy.API
	out  io.Writer
}

func New(cfg config.Config, log *zap.Logger, opts Options) *App {
	a := &App{cfg: cfg, log: log, opts: opts, out: os.Stdout}
	if !opts.DryRun {
		a.api = galaxy.NewClient(cfg.GalaxyURL, cfg.GalaxyAPIKey, cfg.HTTPTimeout)
	}
	return a
}

// Run executes the resolution pipeline once. The whole run is pure given
// (schedule file, reference date) up to the final Galaxy sync.
func (a *App) Run(ctx context.Context) error {
	at, err := a.referenceDate()
	if err != nil {
		return err
	}

	cfg, err := schedule.Load(a.opts.ConfigPath)
	if err != nil {
		return err
	}

	findings := schedule.Validate(cfg)
	for _, f := range findings {
		if f.Severity == schedule.SeverityError && !a.opts.FirstMatch {
			continue // reported through the returned error below
		}
		a.log.Warn("schedule finding", zap.Stringer("finding", f))
	}
	if schedule.Blocking(findings) && !a.opts.FirstMatch {
		for _, f := range findings {
			if f.Severity == schedule.SeverityError {
				return f.Err
			}
		}
	}

	out := schedule.Resolve(cfg, at)
	assignment, err := schedule.Assign(cfg, out, a.opts.FirstMatch)
	if err != nil {
		return err
	}

	switch {
	case len(assignment.Conflicts) > 0:
		a.log.Warn("conflicting on-duty groups, first declared wins",
			zap.String("date", at.String()),
			zap.String("group", assignment.Group),
			zap.Strings("conflicts", assignment.Conflicts),
		)
	case assignment.Active:
		a.log.Info("resolved on-duty group",
			zap.String("date", at.String()),
			zap.String("group", assignment.Group),
		)
	default:
		a.log.Info("no group on duty", zap.String("date", at.String()))
	}

	if err := a.emit(assignment); err != nil {
		return err
	}

	if a.opts.DryRun {
		a.log.Info("dry run, skipping galaxy sync")
		return nil
	}

	m := manager.New(a.api, a.log, a.cfg.TrainingRole)
	if err := m.Apply(ctx, cfg, assignment); err != nil {
		return err
	}
	a.log.Info("galaxy sync complete", zap.String("url", a.cfg.GalaxyURL))
	return nil
}

// referenceDate returns the explicit -date override, or today.
func (a *App) referenceDate() (schedule.Date, error) {
	if a.opts.Date != "" {
		return schedule.ParseDate(a.opts.Date)
	}
	return schedule.DateOf(time.Now()), nil
}

// emit writes the assignment payload for the downstream routing layer.
func (a *App) emit(assignment schedule.Assignment) error {
	enc := json.NewEncoder(a.out)
	if err := enc.Encode(assignment); err != nil {
		return fmt.Errorf("emit assignment: %w", err)
	}
	return nil
}
