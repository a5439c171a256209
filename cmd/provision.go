package main

import (
	"ayurdeploy/internal/config"
	"ayurdeploy/internal/provisioner"
	"ayurdeploy/pkg/logger"
	"ayurdeploy/pkg/storage"
	"ayurdeploy/pkg/supabase"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// provisionCommand constructs the 'provision' subcommand that creates the
// application tables in Supabase, seeds them and upserts the deployed
// contracts.
func provisionCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Creates and seeds the Supabase tables and publishes deployed contracts",
		Run: func(cmd *cobra.Command, args []string) {
			contractsPath, _ := cmd.Flags().GetString("contracts")
			if contractsPath == "" {
				contractsPath = cfg.Output.DeployedContractsPath
			}

			ctx := runContext(uuid.New())

			if err := cfg.ValidateSupabase(); err != nil {
				logger.Fatal(ctx, "invalid supabase configuration", zap.Error(err), kindField(err))
			}

			claims, err := supabase.ValidateServiceRoleKey(cfg.Supabase.ServiceRoleKey, time.Now())
			if err != nil {
				logger.Fatal(ctx, "invalid service role key", zap.Error(err), kindField(err))
			}
			if !claims.MatchesProject(cfg.Supabase.URL) {
				logger.Warn(ctx, "service role key was issued for another project",
					zap.String("ref", claims.Ref), zap.String("url", cfg.Supabase.URL))
			}

			client, err := supabase.New(&http.Client{Timeout: cfg.Supabase.RequestTimeout},
				cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey, cfg.Supabase.Schema)
			if err != nil {
				logger.Fatal(ctx, "could not create supabase client", zap.Error(err), kindField(err))
			}

			// with a direct connection every statement goes over SQL so rows
			// written right after a table is created never hit a stale
			// PostgREST schema cache.
			var (
				tables storage.TableStorage = client
				db     storage.Storage
			)
			if cfg.HasDatabase() {
				strg, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()

				tables, db = strg, strg
			} else {
				logger.Info(ctx, "no database connection configured, missing tables cannot be created")
			}

			if err := provisioner.New(tables, db).Run(ctx, contractsPath); err != nil {
				logger.Fatal(ctx, "could not provision database", zap.Error(err), kindField(err))
			}
			logger.Info(ctx, "database provisioned")
		},
	}

	cmd.Flags().String("contracts", "", "Path of deployed_contracts.json (defaults to output.deployedContractsPath)")

	return cmd
}
