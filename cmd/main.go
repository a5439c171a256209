// Package main provides the CLI entrypoint of ayurdeploy.
// It wires subcommands (deploy, compile, provision, migrate, history), loads configuration, and initializes logging.
package main

import (
	"ayurdeploy/internal/config"
	"ayurdeploy/pkg/logger"
	"ayurdeploy/pkg/serrors"
	"ayurdeploy/pkg/storage/postgres"
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	if !cfg.HasDatabase() {
		logger.Fatal(ctx, "database connection is not configured, set DATABASE_HOST")
	}

	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err), kindField(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// kindField reports the semantic kind of err, ErrInternal for plain errors.
func kindField(err error) zap.Field {
	kind := serrors.KindOf(err)
	if kind == nil {
		return zap.Skip()
	}

	return zap.String("kind", kind.Error())
}

// runContext returns the base context of a command run. Every log line of the
// run carries the same runID.
func runContext(runID uuid.UUID) context.Context {
	return logger.WithFields(context.Background(), zap.String("runID", runID.String()))
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "ayurdeploy",
		Short: "Deploys the AyurTrace contracts and provisions their database",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(nopWriter{})
	configPath := fs.String("c", "config.yml", "The config file path")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	logger.Setup(cfg.Environment)

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		deployCommand(cfg),
		compileCommand(cfg),
		provisionCommand(cfg),
		migrateCommand(cfg),
		historyCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so it can be parsed
// before cobra sees the subcommand flags.
func configArgs(args []string) []string {
	for i, a := range args {
		switch {
		case a == "-c" || a == "--config" || a == "-config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		case strings.HasPrefix(a, "-c="):
			return []string{"-c", strings.TrimPrefix(a, "-c=")}
		case strings.HasPrefix(a, "--config="):
			return []string{"-c", strings.TrimPrefix(a, "--config=")}
		}
	}

	return nil
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
