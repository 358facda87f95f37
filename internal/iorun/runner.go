// Package iorun loads station files, runs index engines on them and
// keeps the resulting evaluations.
package iorun

import (
	"context"
	"log/slog"

	"github.com/gnames/gnfish/internal/iocsv"
	"github.com/gnames/gnfish/pkg/config"
	"github.com/gnames/gnfish/pkg/hfbi"
	"github.com/gnames/gnfish/pkg/lifecycle"
	"github.com/gnames/gnfish/pkg/niseci"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/google/uuid"
)

// Files are the input files of one station.
type Files struct {
	Index report.Index

	// Reference is the reference species list, only used by NISECI.
	Reference string
	Sample    string
	Station   string
}

// Runner evaluates stations. It is safe for concurrent use.
type Runner struct {
	cfg     *config.Config
	refs    *iocsv.ReferenceCache
	archive lifecycle.Archive
}

// New creates a Runner. Latin names of reference species are
// normalized by canon when it is not nil. The archive must be
// initialized by the caller.
func New(
	cfg *config.Config,
	canon iocsv.Canonicalizer,
	arc lifecycle.Archive,
) *Runner {
	return &Runner{
		cfg:     cfg,
		refs:    iocsv.NewReferenceCache(canon),
		archive: arc,
	}
}

// Evaluate computes the index named in files.
func (r *Runner) Evaluate(f Files) (report.Evaluation, error) {
	switch f.Index {
	case report.NISECI:
		return r.NISECI(f)
	case report.HFBI:
		return r.HFBI(f)
	}
	return report.Evaluation{}, UnknownIndexError(string(f.Index))
}

// NISECI loads river station files and computes the NISECI index.
func (r *Runner) NISECI(f Files) (report.Evaluation, error) {
	var res report.Evaluation
	ref, err := r.refs.Load(f.Reference)
	if err != nil {
		return res, err
	}
	sample, err := iocsv.LoadNISECISample(f.Sample, ref)
	if err != nil {
		return res, err
	}
	st, err := iocsv.LoadNISECIStation(f.Station)
	if err != nil {
		return res, err
	}

	nis, err := niseci.Calculate(sample, ref, st)
	if err != nil {
		return res, ComputationError(report.NISECI, st.Code, err)
	}

	res = report.FromNISECI(st, nis)
	slog.Info("Evaluated station",
		"index", res.Index, "station", st.Code, "date", st.Date)
	return res, nil
}

// HFBI loads lagoon station files and computes the HFBI index.
func (r *Runner) HFBI(f Files) (report.Evaluation, error) {
	var res report.Evaluation
	sample, err := iocsv.LoadHFBISample(f.Sample)
	if err != nil {
		return res, err
	}
	st, err := iocsv.LoadHFBIStation(f.Station)
	if err != nil {
		return res, err
	}

	hf, err := hfbi.Calculate(sample, st)
	if err != nil {
		return res, ComputationError(report.HFBI, st.Code, err)
	}

	res = report.FromHFBI(st, hf)
	slog.Info("Evaluated station",
		"index", res.Index, "station", st.Code, "date", st.Date)
	return res, nil
}

// Save stores evaluations in the archive under a new random run ID.
func (r *Runner) Save(
	ctx context.Context,
	evs []report.Evaluation,
) (string, error) {
	runID := uuid.NewString()
	if len(evs) == 0 {
		return runID, nil
	}
	if err := r.archive.Save(ctx, runID, evs); err != nil {
		return runID, err
	}
	slog.Info("Archived evaluations", "run", runID, "count", len(evs))
	return runID, nil
}
