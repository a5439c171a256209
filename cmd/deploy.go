package main

import (
	"ayurdeploy/internal/config"
	"ayurdeploy/internal/deployer"
	"ayurdeploy/pkg/artifact"
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/logger"
	"ayurdeploy/pkg/metrics"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// deployCommand constructs the 'deploy' subcommand. By default it compiles
// and deploys the configured source and writes deployment_details.json. With
// --contracts-dir every source of the directory is deployed and
// deployed_contracts.json is written instead.
func deployCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Compiles and deploys contracts to the configured node",
		Run: func(cmd *cobra.Command, args []string) {
			contractsDir, _ := cmd.Flags().GetString("contracts-dir")
			record, _ := cmd.Flags().GetBool("record")

			runID := uuid.New()
			ctx := runContext(runID)

			if err := cfg.ValidateChain(); err != nil {
				logger.Fatal(ctx, "invalid chain configuration", zap.Error(err), kindField(err))
			}

			m := metrics.NewDeploy()
			defer writeMetrics(ctx, cfg, m)

			start := time.Now()
			client, err := deployer.Dial(ctx, cfg.Chain.RPCURL, cfg.Chain.DialTimeout)
			if err != nil {
				logger.Fatal(ctx, "could not connect to node", zap.String("url", cfg.Chain.RPCURL), zap.Error(err), kindField(err))
			}
			defer client.Close()

			d, err := deployer.New(ctx, client, deployer.Options{
				AccountAddress:  cfg.Chain.AccountAddress,
				PrivateKey:      cfg.Chain.PrivateKey,
				ExpectedChainID: cfg.Chain.ExpectedChainID,
				GasMultiplier:   cfg.Chain.GasMultiplier,
				ReceiptTimeout:  cfg.Chain.ReceiptTimeout,
				Metrics:         m,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create deployer", zap.Error(err), kindField(err))
			}
			m.ObserveStep("connect", start)

			if _, err := d.CheckBalance(ctx); err != nil {
				logger.Fatal(ctx, "could not check balance", zap.Error(err), kindField(err))
			}

			compiler := getCompiler(ctx, cfg, m)

			var results []*deployer.Result
			start = time.Now()
			if contractsDir != "" {
				contracts := compileDir(ctx, compiler, contractsDir)
				m.ObserveStep("compile", start)

				results, err = d.DeployAll(ctx, contracts)
				if err != nil {
					logger.Fatal(ctx, "could not deploy contracts", zap.Error(err), kindField(err))
				}

				path := cfg.Output.DeployedContractsPath
				if err := artifact.WriteDeployedContracts(path, deployer.DeployedContracts(results)); err != nil {
					logger.Fatal(ctx, "could not write deployed contracts", zap.Error(err), kindField(err))
				}
				logger.Info(ctx, "deployed contracts written", zap.String("path", path))
			} else {
				contract := compileSource(ctx, compiler, cfg.Compiler.SourcePath, cfg.Compiler.ContractName)
				m.ObserveStep("compile", start)

				res, err := d.Deploy(ctx, contract)
				if err != nil {
					logger.Fatal(ctx, "could not deploy contract", zap.Error(err), kindField(err))
				}
				results = append(results, res)

				path := cfg.Output.DeploymentDetailsPath
				if err := artifact.WriteDeploymentDetails(path, res.Details()); err != nil {
					logger.Fatal(ctx, "could not write deployment details", zap.Error(err), kindField(err))
				}
				logger.Info(ctx, "deployment details written", zap.String("path", path))
			}

			if record {
				recordDeployments(ctx, cfg, runID, d, results)
			}
		},
	}

	cmd.Flags().String("contracts-dir", "", "Deploy every .sol file of this directory and write deployed_contracts.json")
	cmd.Flags().Bool("record", false, "Append the deployments to the database history table")

	return cmd
}

// recordDeployments stores the results in the deployment history.
func recordDeployments(ctx context.Context, cfg *config.Config, runID uuid.UUID,
	d *deployer.Deployer, results []*deployer.Result,
) {
	strg, closeStrg := getPostgres(ctx, cfg)
	defer closeStrg()

	deployments := make([]domain.Deployment, 0, len(results))
	for _, r := range results {
		dep := d.Deployment(r)
		dep.RunID = runID
		deployments = append(deployments, dep)
	}

	stored, err := strg.StoreDeployments(ctx, deployments...)
	if err != nil {
		logger.Fatal(ctx, "could not record deployments", zap.Error(err), kindField(err))
	}
	for _, s := range stored {
		logger.Info(ctx, "deployment recorded", zap.String("id", s.ID.String()), zap.String("contract", s.ContractName))
	}
}
