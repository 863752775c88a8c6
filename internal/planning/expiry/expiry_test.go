// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

package expiry

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExpirer records the cutoff it was called with.
type fakeExpirer struct {
	expired int
	err     error
	calls   int
	cutoff  int
}

func (f *fakeExpirer) ExpireEnded(_ context.Context, cutoffDays int) (int, error) {
	f.calls++
	f.cutoff = cutoffDays
	return f.expired, f.err
}

/*
TestSweeper_Run verifies every target is swept with the configured cutoff and
a failing target does not block the others.
*/
func TestSweeper_Run(t *testing.T) {
	events := &fakeExpirer{expired: 4}
	items := &fakeExpirer{err: errors.New("connection reset")}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sweeper := NewSweeper(map[string]Expirer{
		"events": events,
		"items":  items,
	}, 60, logger)

	sweeper.Run(context.Background())

	assert.Equal(t, 1, events.calls)
	assert.Equal(t, 60, events.cutoff)
	assert.Equal(t, 1, items.calls)
}

/*
TestSweeper_Start verifies a malformed cron expression is rejected.
*/
func TestSweeper_Start(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sweeper := NewSweeper(map[string]Expirer{}, 60, logger)

	require.Error(t, sweeper.Start("not-a-cron-spec"))

	require.NoError(t, sweeper.Start("0 2 * * *"))
	sweeper.Stop()
}
