// Package solc manages Solidity compiler releases and compiles contracts by
// running the solc executable.
package solc

import (
	"ayurdeploy/pkg/logger"
	"ayurdeploy/pkg/serrors"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

var versionRe = regexp.MustCompile(`Version:\s*(\d+\.\d+\.\d+)(\S*)`) //nolint: gochecknoglobals

// InstallerOptions configures where compiler releases are looked up and kept.
type InstallerOptions struct {
	// BinaryPath forces a specific executable. Version management is skipped.
	BinaryPath string
	// CacheDir keeps downloaded releases as solc-v<version>.
	CacheDir string
	// ReleasesURL is the base URL of the binaries mirror.
	ReleasesURL string
	// Platform overrides the release platform directory (e.g. linux-amd64).
	Platform string
	// SkipPath disables picking up a matching solc from PATH.
	SkipPath bool
}

// Installer ensures a given solc version is available locally.
type Installer struct {
	httpClient *http.Client
	opts       InstallerOptions
}

// NewInstaller creates an Installer downloading releases with httpClient.
func NewInstaller(httpClient *http.Client, opts InstallerOptions) *Installer {
	opts.ReleasesURL = strings.TrimRight(opts.ReleasesURL, "/")

	return &Installer{httpClient: httpClient, opts: opts}
}

// Ensure returns the path of a solc executable for version. It checks, in
// order, the forced binary, the cache directory, solc on PATH and finally
// downloads the release into the cache.
func (i *Installer) Ensure(ctx context.Context, version string) (string, error) {
	ctx = logger.WithFields(ctx, zap.String("solcVersion", version))

	if i.opts.BinaryPath != "" {
		if _, err := os.Stat(i.opts.BinaryPath); err != nil {
			return "", serrors.Wrap(serrors.ErrCompilerInstall, err, "solc binary %s is not usable", i.opts.BinaryPath)
		}
		if got, err := BinaryVersion(ctx, i.opts.BinaryPath); err == nil && got != version {
			logger.Warn(ctx, "forced solc binary has a different version", zap.String("binaryVersion", got))
		}

		return i.opts.BinaryPath, nil
	}

	cached := i.cachedPath(version)
	if isExecutable(cached) {
		logger.Debug(ctx, "using cached solc", zap.String("path", cached))

		return cached, nil
	}

	if !i.opts.SkipPath {
		if p, err := exec.LookPath("solc"); err == nil {
			if got, err := BinaryVersion(ctx, p); err == nil && got == version {
				logger.Debug(ctx, "using solc from PATH", zap.String("path", p))

				return p, nil
			}
		}
	}

	logger.Info(ctx, "installing solc")
	if err := i.install(ctx, version, cached); err != nil {
		return "", serrors.Wrap(serrors.ErrCompilerInstall, err, "could not install solc %s", version)
	}
	logger.Info(ctx, "solc installed", zap.String("path", cached))

	return cached, nil
}

func (i *Installer) cachedPath(version string) string {
	name := "solc-v" + version
	if runtime.GOOS == "windows" {
		name += ".exe"
	}

	return filepath.Join(i.opts.CacheDir, name)
}

// build is a single entry of the release list.json document.
type build struct {
	Path        string `json:"path"`
	Version     string `json:"version"`
	LongVersion string `json:"longVersion"`
	Keccak256   string `json:"keccak256"`
	SHA256      string `json:"sha256"`
}

type releaseList struct {
	Builds   []build           `json:"builds"`
	Releases map[string]string `json:"releases"`
}

func (i *Installer) install(ctx context.Context, version, dest string) error {
	platform := i.opts.Platform
	if platform == "" {
		p, err := currentPlatform()
		if err != nil {
			return err
		}
		platform = p
	}

	listBody, err := i.get(ctx, i.opts.ReleasesURL+"/"+platform+"/list.json")
	if err != nil {
		return err
	}

	var list releaseList
	if err := json.Unmarshal(listBody, &list); err != nil {
		return fmt.Errorf("could not decode release list: %w", err)
	}

	file, ok := list.Releases[version]
	if !ok {
		return fmt.Errorf("version %s is not released for %s", version, platform)
	}

	var b *build
	for idx := range list.Builds {
		if list.Builds[idx].Path == file {
			b = &list.Builds[idx]

			break
		}
	}
	if b == nil {
		return fmt.Errorf("release %s has no build entry", file)
	}

	bin, err := i.get(ctx, i.opts.ReleasesURL+"/"+platform+"/"+file)
	if err != nil {
		return err
	}
	if err := verifyBuild(bin, *b); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil { //nolint: gosec
		return fmt.Errorf("could not create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".solc-*")
	if err != nil {
		return fmt.Errorf("could not create temp file: %w", err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(bin)); err != nil {
		_ = tmp.Close()

		return fmt.Errorf("could not write solc binary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write solc binary: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o755); err != nil { //nolint: gosec
		return fmt.Errorf("could not make solc executable: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("could not move solc binary into cache: %w", err)
	}

	return nil
}

func (i *Installer) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s returned status %d", url, resp.StatusCode)
	}

	return b, nil
}

// verifyBuild checks the downloaded binary against both digests published in
// the release list.
func verifyBuild(bin []byte, b build) error {
	sum := sha256.Sum256(bin)
	if want := strings.TrimPrefix(b.SHA256, "0x"); want != "" && hex.EncodeToString(sum[:]) != want {
		return fmt.Errorf("sha256 mismatch for %s", b.Path)
	}
	if want := strings.TrimPrefix(b.Keccak256, "0x"); want != "" && hex.EncodeToString(crypto.Keccak256(bin)) != want {
		return fmt.Errorf("keccak256 mismatch for %s", b.Path)
	}

	return nil
}

func currentPlatform() (string, error) {
	switch {
	case runtime.GOOS == "linux" && runtime.GOARCH == "amd64":
		return "linux-amd64", nil
	case runtime.GOOS == "darwin":
		return "macosx-amd64", nil
	case runtime.GOOS == "windows" && runtime.GOARCH == "amd64":
		return "windows-amd64", nil
	default:
		return "", fmt.Errorf("no official solc builds for %s/%s", runtime.GOOS, runtime.GOARCH)
	}
}

// BinaryVersion runs `solc --version` and returns the x.y.z part of the
// reported version.
func BinaryVersion(ctx context.Context, binary string) (string, error) {
	full, err := FullVersion(ctx, binary)
	if err != nil {
		return "", err
	}

	return strings.SplitN(full, "+", 2)[0], nil
}

// FullVersion runs `solc --version` and returns the complete version string,
// e.g. 0.8.20+commit.a1b79de6.Linux.g++.
func FullVersion(ctx context.Context, binary string) (string, error) {
	out, err := exec.CommandContext(ctx, binary, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("could not run %s --version: %w", binary, err)
	}

	return ParseVersion(out)
}

// ParseVersion extracts the version from `solc --version` output.
func ParseVersion(out []byte) (string, error) {
	m := versionRe.FindSubmatch(out)
	if m == nil {
		return "", errors.New("could not find a version in solc output")
	}

	return string(m[1]) + string(m[2]), nil
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	return runtime.GOOS == "windows" || info.Mode()&0o111 != 0
}
