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
	"github.com/gnames/gnfish/internal/iodb"
	"github.com/gnames/gnfish/internal/iofs"
	"github.com/gnames/gnfish/internal/ioschema"
	"github.com/spf13/cobra"
)

// getMigrateCmd returns the migrate command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getMigrateCmd() *cobra.Command {
	var recreate bool

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the archive schema",
		Long: `Migrate creates or updates the schema of the evaluations archive.

The archive is selected by 'archive.type' or the --archive flag:
  - sqlite: tables and indexes are created if they do not exist
  - postgres: GORM AutoMigrate adds missing tables, columns and
    indexes, existing data is preserved
  - none: nothing to do

With --recreate the archive is emptied first. All stored evaluations
are lost.

Examples:
  gnfish migrate --archive sqlite
  gnfish migrate --archive postgres --recreate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMigrate(recreate)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	migrateCmd.Flags().BoolVar(
		&recreate, "recreate", false,
		"drop archive tables before creating them",
	)

	return migrateCmd
}

func runMigrate(recreate bool) error {
	ctx := context.Background()

	switch cfg.Archive.Type {
	case "", "none":
		gn.Warn("Archive type is <em>none</em>, nothing to migrate.")
		return nil
	case "postgres":
		if recreate {
			if err := recreatePostgres(ctx); err != nil {
				return err
			}
		}
	case "sqlite":
		if recreate {
			if err := iofs.RemoveArchive(cfg.ArchivePath()); err != nil {
				return err
			}
		}
	}

	arc, err := openArchive(ctx)
	if err != nil {
		return err
	}
	defer arc.Close()

	gn.Info("Archive <em>%s</em> is up to date.", cfg.Archive.Type)
	return nil
}

func recreatePostgres(ctx context.Context) error {
	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	gn.Info("Recreating archive tables...")
	return ioschema.NewManager(op).Create(ctx)
}
