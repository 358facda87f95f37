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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfish/internal/iofs"
	"github.com/gnames/gnfish/internal/iologger"
	app "github.com/gnames/gnfish/pkg"
	"github.com/gnames/gnfish/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd creates the base command together with all its
// subcommands.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gnfish",
		Short:   "Computes NISECI and HFBI fish ecological indices",
		Long: `gnfish computes ecological quality indices of fish communities
from field sampling data.

  - niseci: river stations (Nuovo Indice dello Stato Ecologico
    delle Comunita Ittiche)
  - hfbi: lagoon stations (Habitat Fish Bioindicator Index)
  - batch: many stations listed in a YAML manifest
  - migrate: create or update the archive of evaluations

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNFISH_*)
  3. Config file (~/.config/gnfish/config.yaml)
  4. Built-in defaults

Environment variables use underscores for nested fields, for example
GNFISH_OUTPUT_FORMAT, GNFISH_ARCHIVE_TYPE, GNFISH_DATABASE_HOST,
GNFISH_JOBS_NUMBER.`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "gnfish version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gnfish")

	pf := rootCmd.PersistentFlags()
	pf.StringP("format", "f", "",
		"output format: pretty, compact, csv, tsv")
	pf.Bool("with-species", false,
		"add per-species values of NISECI evaluations")
	pf.String("archive", "",
		"store evaluations: none, sqlite, postgres")
	pf.IntP("jobs", "j", 0,
		"number of stations evaluated concurrently")

	rootCmd.AddCommand(
		getNISECICmd(),
		getHFBICmd(),
		getBatchCmd(),
		getMigrateCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info(
		"Configuration files are available",
		"dir", config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// CLI flags have the highest precedence
	for _, f := range []funcFlag{
		formatFlag, withSpeciesFlag, archiveFlag, jobsFlag,
	} {
		f(cmd)
	}

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ConfigReadError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ConfigReadError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	v.SetEnvPrefix("GNFISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Output configuration
	v.BindEnv("output.format", "GNFISH_OUTPUT_FORMAT")
	v.BindEnv("output.with_species", "GNFISH_OUTPUT_WITH_SPECIES")

	// Archive configuration
	v.BindEnv("archive.type", "GNFISH_ARCHIVE_TYPE")
	v.BindEnv("archive.path", "GNFISH_ARCHIVE_PATH")

	// Database configuration
	v.BindEnv("database.host", "GNFISH_DATABASE_HOST")
	v.BindEnv("database.port", "GNFISH_DATABASE_PORT")
	v.BindEnv("database.user", "GNFISH_DATABASE_USER")
	v.BindEnv("database.password", "GNFISH_DATABASE_PASSWORD")
	v.BindEnv("database.database", "GNFISH_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "GNFISH_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "GNFISH_DATABASE_BATCH_SIZE")

	// Log configuration
	v.BindEnv("log.level", "GNFISH_LOG_LEVEL")
	v.BindEnv("log.format", "GNFISH_LOG_FORMAT")
	v.BindEnv("log.destination", "GNFISH_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "GNFISH_JOBS_NUMBER")

	v.AutomaticEnv()
}
