package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/gnfish/internal/ioarchive"
	"github.com/gnames/gnfish/internal/iorun"
	"github.com/gnames/gnfish/pkg/lifecycle"
	"github.com/gnames/gnfish/pkg/parserpool"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
)

// runEvaluate computes the index of one station, prints it and keeps it
// in the configured archive.
func runEvaluate(cmd *cobra.Command, files iorun.Files) error {
	ctx := context.Background()

	arc, err := openArchive(ctx)
	if err != nil {
		return err
	}
	defer arc.Close()

	var canon parserpool.Pool
	if files.Index == report.NISECI {
		canon = parserpool.NewPool(1)
		defer canon.Close()
	}

	r := iorun.New(cfg, canon, arc)
	ev, err := r.Evaluate(files)
	if err != nil {
		return err
	}

	evs := []report.Evaluation{ev}
	if err = printEvaluations(cmd, evs); err != nil {
		return err
	}

	_, err = r.Save(ctx, evs)
	return err
}

func openArchive(ctx context.Context) (lifecycle.Archive, error) {
	arc, err := ioarchive.New(cfg)
	if err != nil {
		return nil, err
	}
	if err = arc.Init(ctx); err != nil {
		return nil, err
	}
	slog.Info("Archive is ready", "type", cfg.Archive.Type)
	return arc, nil
}

func printEvaluations(cmd *cobra.Command, evs []report.Evaluation) error {
	res, err := report.Output(
		evs, outputFormat(cfg.Output.Format), cfg.Output.WithSpecies,
	)
	if err != nil {
		return err
	}
	if res == "" {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), res)
	return nil
}

func outputFormat(s string) gnfmt.Format {
	switch s {
	case "compact":
		return gnfmt.CompactJSON
	case "csv":
		return gnfmt.CSV
	case "tsv":
		return gnfmt.TSV
	default:
		return gnfmt.PrettyJSON
	}
}
