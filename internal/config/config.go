package config

import (
	"ayurdeploy/pkg/serrors"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the target chain, the Solidity
// compiler, output files, the Supabase project and the optional direct
// database connection.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Chain contains the RPC endpoint and the deployer account
	Chain struct {
		// RPCURL is the JSON-RPC endpoint of the node (Ganache by default)
		RPCURL string `env:"GANACHE_URL" env-default:"http://127.0.0.1:7545" yaml:"rpcUrl"`
		// AccountAddress is the deployer account, it must match PrivateKey
		AccountAddress string `env:"ACCOUNT_ADDRESS" yaml:"accountAddress"`
		// PrivateKey is the hex encoded secp256k1 key of the deployer account
		PrivateKey string `env:"PRIVATE_KEY" yaml:"privateKey"`
		// ExpectedChainID rejects nodes reporting another chain ID. Zero accepts any chain.
		ExpectedChainID uint64 `env:"CHAIN_ID" env-default:"0" yaml:"expectedChainId"`
		// GasMultiplier is applied to the gas estimate to obtain the gas limit
		GasMultiplier float64 `env:"GAS_MULTIPLIER" env-default:"1.2" yaml:"gasMultiplier"`
		// DialTimeout bounds connecting to the node and the initial chain ID call
		DialTimeout time.Duration `env:"DIAL_TIMEOUT" env-default:"10s" yaml:"dialTimeout"`
		// ReceiptTimeout is the maximum time to wait for a deployment receipt
		ReceiptTimeout time.Duration `env:"RECEIPT_TIMEOUT" env-default:"2m" yaml:"receiptTimeout"`
	} `yaml:"chain"`

	// Compiler contains the Solidity compiler settings
	Compiler struct {
		// Version is the exact solc release to use
		Version string `env:"SOLC_VERSION" env-default:"0.8.20" yaml:"version"`
		// SourcePath is the Solidity file deployed by the single contract mode
		SourcePath string `env:"SOLIDITY_FILE" env-default:"AyurTraceUnified.sol" yaml:"sourcePath"`
		// ContractName selects a contract from the source file. Empty picks one automatically.
		ContractName string `env:"CONTRACT_NAME" yaml:"contractName"`
		// Optimize enables the solc optimizer
		Optimize bool `env:"SOLC_OPTIMIZE" env-default:"true" yaml:"optimize"`
		// OptimizerRuns is the optimizer runs parameter
		OptimizerRuns int `env:"SOLC_OPTIMIZER_RUNS" env-default:"200" yaml:"optimizerRuns"`
		// EVMVersion is the target EVM version
		EVMVersion string `env:"SOLC_EVM_VERSION" env-default:"london" yaml:"evmVersion"`
		// ViaIR enables the IR based code generator
		ViaIR bool `env:"SOLC_VIA_IR" env-default:"true" yaml:"viaIR"`
		// BinaryPath forces a specific solc executable and skips version management
		BinaryPath string `env:"SOLC_BINARY" yaml:"binaryPath"`
		// CacheDir is where downloaded compiler releases are kept. Empty means ~/.solcx
		CacheDir string `env:"SOLC_CACHE_DIR" yaml:"cacheDir"`
		// ReleasesURL is the base URL of the official solc binaries mirror
		ReleasesURL string `env:"SOLC_RELEASES_URL" env-default:"https://binaries.soliditylang.org" yaml:"releasesUrl"` //nolint: lll
		// DownloadTimeout bounds downloading a compiler release
		DownloadTimeout time.Duration `env:"SOLC_DOWNLOAD_TIMEOUT" env-default:"5m" yaml:"downloadTimeout"`
	} `yaml:"compiler"`

	// Output contains the paths of generated files
	Output struct {
		// DeploymentDetailsPath is written by the single contract deployment
		DeploymentDetailsPath string `env:"DEPLOYMENT_DETAILS_PATH" env-default:"deployment_details.json" yaml:"deploymentDetailsPath"` //nolint: lll
		// DeployedContractsPath is written by multi-contract deployments and read by the provisioner
		DeployedContractsPath string `env:"DEPLOYED_CONTRACTS_PATH" env-default:"deployed_contracts.json" yaml:"deployedContractsPath"` //nolint: lll
		// MetricsTextfile, when set, receives deployment metrics in node-exporter textfile format
		MetricsTextfile string `env:"METRICS_TEXTFILE" yaml:"metricsTextfile"`
	} `yaml:"output"`

	// Supabase contains the hosted database service credentials
	Supabase struct {
		// URL is the project URL, e.g. https://xyz.supabase.co
		URL string `env:"SUPABASE_URL" yaml:"url"`
		// ServiceRoleKey is the service role API key (a JWT)
		ServiceRoleKey string `env:"SERVICE_ROLE_KEY" yaml:"serviceRoleKey"`
		// Schema is the exposed schema the tables live in
		Schema string `env:"SUPABASE_SCHEMA" env-default:"public" yaml:"schema"`
		// RequestTimeout bounds every REST call
		RequestTimeout time.Duration `env:"SUPABASE_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
	} `yaml:"supabase"`

	// Database contains the optional direct postgres connection used for DDL and deployment history
	Database struct {
		// Host is the database server hostname or IP address. Empty disables the direct connection.
		Host string `env:"DATABASE_HOST" yaml:"host"`
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"postgres" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" yaml:"password"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"require" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"postgres" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"4" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"1" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`
}

// Load reads the optional .env file into the process environment, then
// receives the path for the yaml config file and returns a filled Config
// struct. A missing yaml file is not an error: environment variables and
// defaults are used instead.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}

	var cfg Config
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// ValidateChain checks the deployer account settings. Both the address and
// the private key are required and the address must be a valid hex address.
func (c *Config) ValidateChain() error {
	if c.Chain.AccountAddress == "" || c.Chain.PrivateKey == "" {
		return serrors.With(serrors.ErrConfig, "ACCOUNT_ADDRESS and PRIVATE_KEY must be set")
	}
	if !common.IsHexAddress(c.Chain.AccountAddress) {
		return serrors.With(serrors.ErrConfig, "'%s' is not a valid Ethereum address", c.Chain.AccountAddress)
	}
	if c.Chain.RPCURL == "" {
		return serrors.With(serrors.ErrConfig, "GANACHE_URL must be set")
	}
	if c.Chain.GasMultiplier < 1 {
		return serrors.With(serrors.ErrConfig, "gas multiplier must be at least 1 (got %v)", c.Chain.GasMultiplier)
	}

	return nil
}

// ValidateSupabase checks that the hosted database credentials are present.
func (c *Config) ValidateSupabase() error {
	if c.Supabase.URL == "" || c.Supabase.ServiceRoleKey == "" {
		return serrors.With(serrors.ErrConfig, "SUPABASE_URL and SERVICE_ROLE_KEY must be set")
	}

	return nil
}

// HasDatabase reports whether a direct postgres connection is configured.
func (c *Config) HasDatabase() bool {
	return c.Database.Host != ""
}

// SolcCacheDir returns the directory holding downloaded compiler releases.
func (c *Config) SolcCacheDir() (string, error) {
	if c.Compiler.CacheDir != "" {
		return c.Compiler.CacheDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}

	return filepath.Join(home, ".solcx"), nil
}
