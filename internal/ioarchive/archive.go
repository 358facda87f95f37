// Package ioarchive implements lifecycle.Archive for SQLite and
// PostgreSQL storage of evaluations.
package ioarchive

import (
	"context"
	"strings"

	"github.com/gnames/gnfish/pkg/config"
	"github.com/gnames/gnfish/pkg/lifecycle"
	"github.com/gnames/gnfish/pkg/report"
)

// New creates the archive selected by the configuration.
func New(cfg *config.Config) (lifecycle.Archive, error) {
	switch strings.ToLower(cfg.Archive.Type) {
	case "", "none":
		return NewNone(), nil
	case "sqlite":
		return NewSQLite(cfg.ArchivePath()), nil
	case "postgres":
		return NewPostgres(cfg.Database), nil
	}
	return nil, UnknownTypeError(cfg.Archive.Type)
}

type none struct{}

// NewNone creates an archive that discards evaluations.
func NewNone() lifecycle.Archive {
	return none{}
}

func (none) Init(context.Context) error { return nil }

func (none) Save(context.Context, string, []report.Evaluation) error {
	return nil
}

func (none) Close() error { return nil }
