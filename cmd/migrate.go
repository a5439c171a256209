package main

import (
	"ayurdeploy"
	"ayurdeploy/internal/config"
	"ayurdeploy/pkg/logger"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies database
// migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the deployment history database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := runContext(uuid.New())

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			goose.SetBaseFS(ayurdeploy.Migrations)

			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err), kindField(err))
			}
			if err := goose.UpContext(ctx, strg.DB.(*sql.DB), "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err), kindField(err))
			}

			version, err := goose.GetDBVersionContext(ctx, strg.DB.(*sql.DB))
			if err != nil {
				logger.Warn(ctx, "could not read migration version", zap.Error(err))

				return
			}
			logger.Info(ctx, "database migrated", zap.Int64("version", version))
		},
	}

	return cmd
}
