package main

import (
	root "catconnect"
	"catconnect/internal/config"
	"catconnect/pkg/logger"
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand applies the marketplace schema with goose and then brings the
// River job tables up to date.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var skipQueue bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates marketplace and queue tables to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB)

			if err := migrateSchema(db); err != nil {
				logger.Fatal(ctx, "could not migrate marketplace schema", zap.Error(err))
			}
			if skipQueue {
				logger.Info(ctx, "marketplace schema migrated, queue skipped")

				return
			}

			version, err := migrateQueue(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
			logger.Info(ctx, "database migrated", zap.Int("riverVersion", version))
		},
	}
	cmd.Flags().BoolVar(&skipQueue, "skip-queue", false, "Only migrate the marketplace schema")

	return cmd
}

func migrateSchema(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect: %w", err)
	}

	return goose.Up(db, "migrations")
}

// migrateQueue migrates River up to its latest version and returns it.
func migrateQueue(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not list applied versions: %w", err)
	}
	if len(existing) > 0 && existing[len(existing)-1].Version >= latest {
		return latest, nil
	}

	_, err = migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: latest})
	if err != nil {
		return 0, fmt.Errorf("could not apply migrations: %w", err)
	}

	return latest, nil
}
