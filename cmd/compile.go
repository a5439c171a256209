package main

import (
	"ayurdeploy/internal/config"
	"ayurdeploy/pkg/artifact"
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/logger"
	"ayurdeploy/pkg/metrics"
	"ayurdeploy/pkg/solc"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getCompiler makes sure the configured solc version is available and returns
// a compiler using it.
func getCompiler(ctx context.Context, cfg *config.Config, m *metrics.Deploy) *solc.Compiler {
	start := time.Now()

	cacheDir, err := cfg.SolcCacheDir()
	if err != nil {
		logger.Fatal(ctx, "could not resolve solc cache directory", zap.Error(err), kindField(err))
	}

	installer := solc.NewInstaller(&http.Client{Timeout: cfg.Compiler.DownloadTimeout}, solc.InstallerOptions{
		BinaryPath:  cfg.Compiler.BinaryPath,
		CacheDir:    cacheDir,
		ReleasesURL: cfg.Compiler.ReleasesURL,
	})
	binary, err := installer.Ensure(ctx, cfg.Compiler.Version)
	if err != nil {
		logger.Fatal(ctx, "could not install solidity compiler", zap.Error(err), kindField(err))
	}
	m.ObserveStep("install", start)

	return solc.NewCompiler(binary, solc.CompilerOptions{
		Optimize:      cfg.Compiler.Optimize,
		OptimizerRuns: cfg.Compiler.OptimizerRuns,
		EVMVersion:    cfg.Compiler.EVMVersion,
		ViaIR:         cfg.Compiler.ViaIR,
	})
}

// compileSource compiles a single source file and picks the contract to deploy.
func compileSource(ctx context.Context, compiler *solc.Compiler, sourcePath, name string) domain.CompiledContract {
	ctx = logger.WithFields(ctx, zap.String("source", sourcePath))

	logger.Info(ctx, "compiling contract...")
	contracts, err := compiler.Compile(ctx, sourcePath)
	if err != nil {
		logger.Fatal(ctx, "could not compile contract", zap.Error(err), kindField(err))
	}

	contract, err := solc.SelectContract(contracts, name, sourcePath)
	if err != nil {
		logger.Fatal(ctx, "could not select contract", zap.Error(err), kindField(err))
	}
	logger.Info(ctx, "contract compiled", zap.String("contract", contract.Name))

	return contract
}

// compileDir compiles every .sol file of dir. Only the deployable contracts
// declared in each file itself are kept so imported dependencies are not
// deployed twice. Finding none is fatal.
func compileDir(ctx context.Context, compiler *solc.Compiler, dir string) []domain.CompiledContract {
	sources, err := filepath.Glob(filepath.Join(dir, "*.sol"))
	if err != nil {
		logger.Fatal(ctx, "could not list solidity sources", zap.Error(err), kindField(err))
	}
	if len(sources) == 0 {
		logger.Fatal(ctx, "no solidity sources found", zap.String("dir", dir))
	}
	sort.Strings(sources)

	seen := map[string]bool{}
	var out []domain.CompiledContract
	for _, source := range sources {
		contracts, err := compiler.Compile(ctx, source)
		if err != nil {
			logger.Fatal(ctx, "could not compile contract", zap.String("source", source), zap.Error(err), kindField(err))
		}

		declared := solc.DeclaredIn(contracts, source)
		if len(declared) == 0 {
			logger.Warn(ctx, "source declares no deployable contract", zap.String("source", source))
		}
		for _, c := range declared {
			if seen[c.Name] {
				continue
			}
			seen[c.Name] = true
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		logger.Fatal(ctx, "no deployable contracts found", zap.String("dir", dir))
	}
	logger.Info(ctx, "contracts compiled", zap.Int("count", len(out)))

	return out
}

// compileCommand constructs the 'compile' subcommand that compiles the
// configured source without touching the chain and writes the selected
// contract's ABI and bytecode.
func compileCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compiles the Solidity source and writes its ABI and bytecode",
		Run: func(cmd *cobra.Command, args []string) {
			out, _ := cmd.Flags().GetString("out")
			ctx := runContext(uuid.New())

			compiler := getCompiler(ctx, cfg, nil)
			contract := compileSource(ctx, compiler, cfg.Compiler.SourcePath, cfg.Compiler.ContractName)

			if err := artifact.WriteJSON(out, contract); err != nil {
				logger.Fatal(ctx, "could not write compiled contract", zap.Error(err), kindField(err))
			}
			logger.Info(ctx, "compiled contract written", zap.String("path", out))
		},
	}

	cmd.Flags().String("out", "compiled_contract.json", "Output path of the compiled contract")

	return cmd
}

// writeMetrics dumps the run metrics when a textfile path is configured.
func writeMetrics(ctx context.Context, cfg *config.Config, m *metrics.Deploy) {
	if cfg.Output.MetricsTextfile == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output.MetricsTextfile), 0o755); err != nil { //nolint: gosec
		logger.Warn(ctx, "could not create metrics directory", zap.Error(err))

		return
	}
	if err := m.WriteTextfile(cfg.Output.MetricsTextfile); err != nil {
		logger.Warn(ctx, "could not write metrics", zap.Error(err))
	}
}
