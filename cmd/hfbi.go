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
	"github.com/gnames/gn"
	"github.com/gnames/gnfish/internal/iorun"
	"github.com/gnames/gnfish/pkg/report"
	"github.com/spf13/cobra"
)

// getHFBICmd returns the hfbi command.
func getHFBICmd() *cobra.Command {
	var files iorun.Files

	hfbiCmd := &cobra.Command{
		Use:   "hfbi",
		Short: "Compute HFBI index of a lagoon station",
		Long: `Computes the HFBI index of one lagoon station.

Two ';' separated files are required:
  - sampled species with number of individuals and weight
    (campionamento)
  - station data with season, habitat and lagoon type (anagrafica)

The result contains the six metrics, the MMI, the index value and the
ecological status.

Examples:
  gnfish hfbi -s campionamento.csv -a anagrafica.csv
  gnfish hfbi -s campionamento.csv -a anagrafica.csv -f tsv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files.Index = report.HFBI
			err := runEvaluate(cmd, files)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	hfbiCmd.Flags().StringVarP(
		&files.Sample, "sample", "s", "",
		"sample file",
	)
	hfbiCmd.Flags().StringVarP(
		&files.Station, "station", "a", "",
		"station file",
	)
	for _, v := range []string{"sample", "station"} {
		_ = hfbiCmd.MarkFlagRequired(v)
	}

	return hfbiCmd
}
