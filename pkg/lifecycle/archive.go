// Package lifecycle defines contracts of components that keep
// evaluations after they are computed.
package lifecycle

import (
	"context"

	"github.com/gnames/gnfish/pkg/report"
)

// Archive stores evaluations.
type Archive interface {
	// Init opens the storage and creates missing tables.
	Init(ctx context.Context) error

	// Save stores evaluations produced by one run. An evaluation with an
	// ID that is already stored replaces the previous one together with
	// its species rows.
	Save(ctx context.Context, runID string, evs []report.Evaluation) error

	// Close releases the storage.
	Close() error
}
