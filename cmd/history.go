package main

import (
	"ayurdeploy/internal/config"
	"ayurdeploy/pkg/logger"
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// historyCommand constructs the 'history' subcommand that prints the recorded
// deployments, newest first, as JSON.
func historyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Lists recorded deployments",
		Run: func(cmd *cobra.Command, args []string) {
			contract, _ := cmd.Flags().GetString("contract")
			limit, _ := cmd.Flags().GetUint("limit")

			ctx := runContext(uuid.New())

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			deployments, err := strg.Deployments(ctx, contract, limit)
			if err != nil {
				logger.Fatal(ctx, "could not list deployments", zap.Error(err), kindField(err))
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(deployments); err != nil {
				logger.Fatal(ctx, "could not print deployments", zap.Error(err), kindField(err))
			}
		},
	}

	cmd.Flags().String("contract", "", "Only list deployments of this contract")
	cmd.Flags().Uint("limit", 20, "Maximum number of deployments to list, 0 lists all")

	return cmd
}
