// Package daemon drives a Sampler on a fixed interval.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// DefaultInterval is the pause between sampling iterations.
const DefaultInterval = 500 * time.Millisecond

// Sampler runs one sampling iteration. Only errors that must stop the loop
// (a failed persist) are returned; transient clipboard failures are handled
// inside.
type Sampler interface {
	Sample(ctx context.Context) error
}

// Run samples, waits interval, and repeats until ctx is done or a sample
// fails. Iterations never overlap. A cancelled context returns nil.
func Run(ctx context.Context, s Sampler, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	slog.Info("sampling loop started", "interval", interval)

	t := time.NewTimer(0)
	defer t.Stop()

	var done uint64
	for {
		if ctx.Err() != nil {
			slog.Info("sampling loop stopped", "iterations", done)
			return nil
		}
		select {
		case <-ctx.Done():
			continue
		case <-t.C:
		}

		if err := s.Sample(ctx); err != nil {
			if errors.Is(err, context.Canceled) && ctx.Err() != nil {
				continue
			}
			return fmt.Errorf("sample %d: %w", done+1, err)
		}
		done++
		t.Reset(interval)
	}
}
