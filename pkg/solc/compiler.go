package solc

import (
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/logger"
	"ayurdeploy/pkg/serrors"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/compiler"
	"go.uber.org/zap"
)

// CompilerOptions holds the code generation settings passed to solc.
type CompilerOptions struct {
	Optimize      bool
	OptimizerRuns int
	EVMVersion    string
	ViaIR         bool
}

// Compiler runs a solc executable.
type Compiler struct {
	binary string
	opts   CompilerOptions
}

// NewCompiler creates a Compiler for the given executable.
func NewCompiler(binary string, opts CompilerOptions) *Compiler {
	return &Compiler{binary: binary, opts: opts}
}

// Version returns the full version string of the executable.
func (c *Compiler) Version(ctx context.Context) (string, error) {
	v, err := FullVersion(ctx, c.binary)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrCompilerInstall, err, "solc at %s is not usable", c.binary)
	}

	return v, nil
}

// Args returns the command line used to compile sourcePath.
func (c *Compiler) Args(sourcePath string) []string {
	args := []string{"--combined-json", "abi,bin"}
	if c.opts.Optimize {
		args = append(args, "--optimize")
		if c.opts.OptimizerRuns > 0 {
			args = append(args, "--optimize-runs", strconv.Itoa(c.opts.OptimizerRuns))
		}
	}
	if c.opts.EVMVersion != "" {
		args = append(args, "--evm-version", c.opts.EVMVersion)
	}
	if c.opts.ViaIR {
		args = append(args, "--via-ir")
	}

	return append(args, sourcePath)
}

// Compile compiles sourcePath and returns every contract found in the
// output, sorted by name.
func (c *Compiler) Compile(ctx context.Context, sourcePath string) ([]domain.CompiledContract, error) {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, serrors.With(serrors.ErrNotFound, "solidity source %s does not exist", sourcePath)
		}

		return nil, fmt.Errorf("could not read solidity source: %w", err)
	}

	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}

	args := c.Args(sourcePath)
	logger.Debug(ctx, "running solc", zap.String("binary", c.binary), zap.Strings("args", args))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, serrors.Wrap(serrors.ErrCompilation, err, "solc failed: %s", strings.TrimSpace(stderr.String()))
	}
	if stderr.Len() > 0 {
		logger.Warn(ctx, "solc reported warnings", zap.String("output", strings.TrimSpace(stderr.String())))
	}

	return ParseOutput(stdout.Bytes(), string(source), version, strings.Join(args[:len(args)-1], " "))
}

// ParseOutput converts solc --combined-json output into compiled contracts
// sorted by name.
func ParseOutput(combinedJSON []byte, source, compilerVersion, compilerOptions string) ([]domain.CompiledContract, error) {
	parsed, err := compiler.ParseCombinedJSON(combinedJSON, source, "", compilerVersion, compilerOptions)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCompilation, err, "could not parse solc output")
	}

	out := make([]domain.CompiledContract, 0, len(parsed))
	for key, contract := range parsed {
		abi, err := json.Marshal(contract.Info.AbiDefinition)
		if err != nil {
			return nil, fmt.Errorf("could not marshal abi of %s: %w", key, err)
		}

		path, name := splitKey(key)
		out = append(out, domain.CompiledContract{
			Name:            name,
			SourcePath:      path,
			ABI:             abi,
			Bytecode:        contract.Code,
			CompilerVersion: compilerVersion,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}

		return out[i].SourcePath < out[j].SourcePath
	})

	return out, nil
}

// splitKey splits a combined-json key "<path>:<Name>".
func splitKey(key string) (string, string) {
	idx := strings.LastIndex(key, ":")
	if idx < 0 {
		return "", key
	}

	return key[:idx], key[idx+1:]
}

// SelectContract picks the contract to deploy. An explicit name wins.
// Otherwise the contract named after the source file is used, and failing
// that the first deployable contract of the source file in name order.
func SelectContract(contracts []domain.CompiledContract, name, sourcePath string) (domain.CompiledContract, error) {
	if name != "" {
		for _, c := range contracts {
			if c.Name != name {
				continue
			}
			if !c.HasBytecode() {
				return domain.CompiledContract{}, serrors.With(serrors.ErrCompilation,
					"contract %s has no bytecode (abstract contract or interface)", name)
			}

			return c, nil
		}

		return domain.CompiledContract{}, serrors.With(serrors.ErrNotFound,
			"contract %s not found in %s (available: %s)", name, sourcePath, strings.Join(names(contracts), ", "))
	}

	candidates := DeclaredIn(contracts, sourcePath)
	if len(candidates) == 0 {
		for _, c := range contracts {
			if c.HasBytecode() {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return domain.CompiledContract{}, serrors.With(serrors.ErrCompilation, "%s has no deployable contract", sourcePath)
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	for _, c := range candidates {
		if c.Name == base {
			return c, nil
		}
	}

	return candidates[0], nil
}

// DeclaredIn returns the deployable contracts declared in sourcePath itself,
// leaving out the contracts of imported files. Source names are compared as
// absolute paths so relative and absolute spellings of a file match.
func DeclaredIn(contracts []domain.CompiledContract, sourcePath string) []domain.CompiledContract {
	var out []domain.CompiledContract
	for _, c := range contracts {
		if c.HasBytecode() && sameFile(c.SourcePath, sourcePath) {
			out = append(out, c)
		}
	}

	return out
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}

	return absA == absB
}

func names(contracts []domain.CompiledContract) []string {
	out := make([]string, len(contracts))
	for i, c := range contracts {
		out[i] = c.Name
	}

	return out
}
