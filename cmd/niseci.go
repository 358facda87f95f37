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

// getNISECICmd returns the niseci command.
func getNISECICmd() *cobra.Command {
	var files iorun.Files

	niseciCmd := &cobra.Command{
		Use:   "niseci",
		Short: "Compute NISECI index of a river station",
		Long: `Computes the NISECI index of one river station.

Three ';' separated files are required:
  - reference list of species expected in the station (riferimento)
  - sampled fish, one row per individual (campionamento)
  - station data (anagrafica)

The result contains the x1, x2 and x3 sub-indices, the index value,
its RQE and the ecological status. Undefined values are printed as
'null' in JSON and 'NC' in CSV and TSV.

Examples:
  gnfish niseci -r riferimento.csv -s campionamento.csv -a anagrafica.csv
  gnfish niseci -r rif.csv -s camp.csv -a anag.csv -f csv --with-species`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files.Index = report.NISECI
			err := runEvaluate(cmd, files)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	niseciCmd.Flags().StringVarP(
		&files.Reference, "reference", "r", "",
		"reference species file",
	)
	niseciCmd.Flags().StringVarP(
		&files.Sample, "sample", "s", "",
		"sample file",
	)
	niseciCmd.Flags().StringVarP(
		&files.Station, "station", "a", "",
		"station file",
	)
	for _, v := range []string{"reference", "sample", "station"} {
		_ = niseciCmd.MarkFlagRequired(v)
	}

	return niseciCmd
}
