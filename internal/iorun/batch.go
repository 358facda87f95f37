package iorun

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfish/internal/iometrics"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/gnames/gnfmt"
	"golang.org/x/sync/errgroup"
)

// Failure is a station that could not be evaluated.
type Failure struct {
	// Num is the position of the station in the manifest, from 1.
	Num   int
	Files Files
	Err   error
}

// BatchResult is the outcome of a batch run.
type BatchResult struct {
	RunID string

	// Evaluations keep the order of the manifest.
	Evaluations []report.Evaluation

	Failures []Failure
	Duration time.Duration
}

// Summary is a user-facing description of the run.
func (b *BatchResult) Summary() string {
	total := len(b.Evaluations) + len(b.Failures)
	return fmt.Sprintf(
		"Evaluated <em>%s</em> of <em>%s</em> stations in %s, <em>%s</em> failed",
		humanize.Comma(int64(len(b.Evaluations))),
		humanize.Comma(int64(total)),
		gnfmt.TimeString(b.Duration.Seconds()),
		humanize.Comma(int64(len(b.Failures))),
	)
}

// Batch evaluates stations concurrently with up to JobsNumber workers.
// A failing station does not stop the others. Successful evaluations
// are archived, and metrics are written when a metrics file is
// configured.
func (r *Runner) Batch(
	ctx context.Context,
	files []Files,
) (*BatchResult, error) {
	start := time.Now()
	metrics := iometrics.New()
	evs := make([]report.Evaluation, len(files))
	errs := make([]error, len(files))

	bar := newProgressBar(len(files), "stations ")
	var g errgroup.Group
	g.SetLimit(max(r.cfg.JobsNumber, 1))
	for i, f := range files {
		g.Go(func() error {
			defer bar.Increment()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			t := time.Now()
			ev, err := r.Evaluate(f)
			if err != nil {
				errs[i] = err
				metrics.Failed(f.Index, time.Since(t))
				slog.Warn("Cannot evaluate station",
					"num", i+1, "station", f.Station, "error", err)
				return nil
			}
			evs[i] = ev
			metrics.Evaluated(ev, time.Since(t))
			return nil
		})
	}
	_ = g.Wait()
	bar.Finish()

	res := &BatchResult{}
	for i := range files {
		if errs[i] != nil {
			res.Failures = append(res.Failures, Failure{
				Num:   i + 1,
				Files: files[i],
				Err:   StationError(i+1, files[i].Station, errs[i]),
			})
			continue
		}
		res.Evaluations = append(res.Evaluations, evs[i])
	}

	var err error
	res.RunID, err = r.Save(ctx, res.Evaluations)
	if err != nil {
		return res, err
	}

	if path := r.cfg.Batch.MetricsFile; path != "" {
		if err := metrics.WriteFile(path); err != nil {
			return res, err
		}
		slog.Info("Wrote batch metrics", "file", path)
	}

	res.Duration = time.Since(start)
	return res, nil
}

func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
