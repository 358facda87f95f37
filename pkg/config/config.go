// Package config keeps the configuration of gnfish.
//
// The package does not touch the file system or network. Options that
// receive invalid values print a warning with gn.Warn and keep the
// previous value.
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml >
// defaults.
//
// Persistent fields (config.yaml and env vars):
//   - Output: format, with_species
//   - Archive: type, path
//   - Database: host, port, user, password, database, ssl_mode,
//     batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields are HomeDir and Batch.MetricsFile.
//
// Environment variables use the GNFISH_ prefix, for example:
//
//	GNFISH_OUTPUT_FORMAT=csv
//	GNFISH_ARCHIVE_TYPE=sqlite
//	GNFISH_DATABASE_HOST=localhost
//	GNFISH_JOBS_NUMBER=4
package config

import (
	"runtime"
)

// Config is the complete configuration of gnfish.
type Config struct {
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Archive sets where evaluations are stored after computation.
	Archive ArchiveConfig `mapstructure:"archive" yaml:"archive"`

	// Database contains PostgreSQL connection settings of the postgres
	// archive.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Batch contains runtime settings of the batch command.
	Batch BatchConfig `mapstructure:"batch" yaml:"batch"`

	// JobsNumber is the number of stations evaluated concurrently by the
	// batch command.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// OutputConfig sets how evaluations are printed.
type OutputConfig struct {
	// Format is one of 'pretty', 'compact', 'csv', 'tsv'.
	Format string `mapstructure:"format" yaml:"format"`

	// WithSpecies adds per-species values of NISECI evaluations.
	WithSpecies bool `mapstructure:"with_species" yaml:"with_species"`
}

// ArchiveConfig sets the storage of evaluations.
type ArchiveConfig struct {
	// Type is 'none', 'sqlite' or 'postgres'.
	Type string `mapstructure:"type" yaml:"type"`

	// Path is the SQLite file. When empty, the file is kept in the
	// application data directory.
	Path string `mapstructure:"path" yaml:"path"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows inserted by one statement.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// BatchConfig contains runtime-only settings of the batch command.
type BatchConfig struct {
	// MetricsFile is a Prometheus textfile written after a batch run.
	// Empty means no metrics are written.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
}

// New creates a Config with default values.
func New() *Config {
	res := &Config{
		Output: OutputConfig{
			Format: "pretty",
		},
		Archive: ArchiveConfig{
			Type: "none",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnfish",
			SSLMode:   "disable",
			BatchSize: 1_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// ArchivePath returns the SQLite archive file, falling back to the
// default location inside HomeDir.
func (c *Config) ArchivePath() string {
	if c.Archive.Path != "" {
		return c.Archive.Path
	}
	return ArchiveFilePath(c.HomeDir)
}
