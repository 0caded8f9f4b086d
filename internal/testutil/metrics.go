package testutil

import (
	"context"

	"github.com/preston-bernstein/efootball-data-service/internal/metrics"
)

// NewRecorderWithShutdown returns an in-memory recorder and a shutdown that only fails on a done context.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(ctx context.Context) error { return ctx.Err() }
}
