/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/internal/iorun"
	"github.com/gnames/gnfish/pkg/parserpool"
	"github.com/spf13/cobra"
)

// getBatchCmd returns the batch command.
func getBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch <manifest.yaml>",
		Short: "Compute indices of many stations",
		Long: `Computes indices of all stations listed in a YAML manifest.

Each station of the manifest has an index (NISECI or HFBI) and paths
to its files. Relative paths are resolved from the manifest directory.

  stations:
    - index: NISECI
      reference: rivers/riferimento.csv
      sample: rivers/st01/campionamento.csv
      station: rivers/st01/anagrafica.csv
    - index: HFBI
      sample: lagoons/lag01/campionamento.csv
      station: lagoons/lag01/anagrafica.csv

Stations are evaluated concurrently by up to 'jobs_number' workers.
A failed station does not stop the others, but the command exits with
an error when any station failed. Successful evaluations are printed
and stored in the archive under one run ID.

Examples:
  gnfish batch manifest.yaml -f csv
  gnfish batch manifest.yaml -j 8 --archive sqlite
  gnfish batch manifest.yaml --metrics-file gnfish.prom`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsFileFlag(cmd)
			err := runBatch(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	batchCmd.Flags().String(
		"metrics-file", "",
		"write Prometheus metrics of the run to this file",
	)

	return batchCmd
}

func runBatch(cmd *cobra.Command, manifest string) error {
	ctx := context.Background()

	files, err := iorun.LoadManifest(manifest)
	if err != nil {
		return err
	}

	arc, err := openArchive(ctx)
	if err != nil {
		return err
	}
	defer arc.Close()

	canon := parserpool.NewPool(cfg.JobsNumber)
	defer canon.Close()

	r := iorun.New(cfg, canon, arc)
	res, err := r.Batch(ctx, files)
	if err != nil {
		return err
	}

	if err = printEvaluations(cmd, res.Evaluations); err != nil {
		return err
	}

	for _, v := range res.Failures {
		gn.PrintErrorMessage(v.Err)
	}
	gn.Info(res.Summary())

	if len(res.Failures) > 0 {
		return iorun.FailuresError(len(res.Failures), len(files))
	}
	return nil
}
