package cmd

import (
	"github.com/gnames/gnfish/pkg/config"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command)

func formatFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("format") {
		return
	}
	s, _ := cmd.Flags().GetString("format")
	cfg.Update([]config.Option{config.OptOutputFormat(s)})
}

func withSpeciesFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("with-species") {
		return
	}
	b, _ := cmd.Flags().GetBool("with-species")
	cfg.Update([]config.Option{config.OptOutputWithSpecies(b)})
}

func archiveFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("archive") {
		return
	}
	s, _ := cmd.Flags().GetString("archive")
	cfg.Update([]config.Option{config.OptArchiveType(s)})
}

func jobsFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("jobs") {
		return
	}
	i, _ := cmd.Flags().GetInt("jobs")
	cfg.Update([]config.Option{config.OptJobsNumber(i)})
}

func metricsFileFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("metrics-file") {
		return
	}
	s, _ := cmd.Flags().GetString("metrics-file")
	cfg.Update([]config.Option{config.OptBatchMetricsFile(s)})
}
