// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

/*
Package expiry runs the scheduled sweep that retires stale planning records.

Events and items whose dates passed more than the configured number of days
ago move to the expired state. The sweep runs on a cron schedule (02:00 by
default) so the calendar never accumulates dead entries.
*/
package expiry

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// # Sweep Targets

// Expirer marks a store's stale records as expired and reports how many
// rows moved. Both the event and item repositories satisfy it.
type Expirer interface {
	ExpireEnded(context context.Context, cutoffDays int) (int, error)
}

// # Sweeper

// Sweeper owns the cron scheduler for the expiry job.
type Sweeper struct {
	targets    map[string]Expirer
	cutoffDays int
	logger     *slog.Logger
	scheduler  *cron.Cron
}

// NewSweeper constructs a [Sweeper] over the named targets.
func NewSweeper(targets map[string]Expirer, cutoffDays int, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		targets:    targets,
		cutoffDays: cutoffDays,
		logger:     logger,
		scheduler:  cron.New(),
	}
}

/*
Start registers the sweep under the given cron spec and launches the
scheduler in its own goroutine.

Parameters:
  - spec: string (standard five-field cron expression)

Returns:
  - error: Invalid cron expression
*/
func (sweeper *Sweeper) Start(spec string) error {
	_, err := sweeper.scheduler.AddFunc(spec, func() {
		sweeper.Run(context.Background())
	})
	if err != nil {
		return err
	}

	sweeper.scheduler.Start()
	sweeper.logger.Info("expiry_sweep_scheduled", slog.String("spec", spec))
	return nil
}

/*
Run executes one sweep across every target immediately.

Description: A failing target is logged and skipped; one broken table does
not starve the others.
*/
func (sweeper *Sweeper) Run(context context.Context) {
	for name, target := range sweeper.targets {
		expired, err := target.ExpireEnded(context, sweeper.cutoffDays)
		if err != nil {
			sweeper.logger.Error("expiry_sweep_failed",
				slog.String("target", name),
				slog.String("error", err.Error()),
			)
			continue
		}

		if expired > 0 {
			sweeper.logger.Info("expiry_sweep_completed",
				slog.String("target", name),
				slog.Int("expired", expired),
			)
		}
	}
}

// Stop halts the scheduler and waits for an in-flight sweep to finish.
func (sweeper *Sweeper) Stop() {
	ctx := sweeper.scheduler.Stop()
	<-ctx.Done()
}
