// Package artifact reads and writes the JSON documents exchanged between the
// deploy and provision commands.
package artifact

import (
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/serrors"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON writes v to path as JSON indented with two spaces. The file is
// written next to its destination and renamed into place.
func WriteJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", filepath.Base(path), err)
	}
	b = append(b, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint: gosec
			return fmt.Errorf("could not create directory %s: %w", dir, err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("could not write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)

		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}

// WriteDeploymentDetails writes deployment_details.json.
func WriteDeploymentDetails(path string, details domain.DeploymentDetails) error {
	return WriteJSON(path, details)
}

// WriteDeployedContracts writes deployed_contracts.json.
func WriteDeployedContracts(path string, contracts domain.DeployedContracts) error {
	return WriteJSON(path, contracts)
}

// ReadDeployedContracts loads deployed_contracts.json. A missing file is
// reported as serrors.ErrNotFound.
func ReadDeployedContracts(path string) (domain.DeployedContracts, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, serrors.With(serrors.ErrNotFound, "%s does not exist, deploy the contracts first", path)
		}

		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	var contracts domain.DeployedContracts
	if err := json.Unmarshal(b, &contracts); err != nil {
		return nil, serrors.Wrap(serrors.ErrConfig, err, "%s is not a valid deployed contracts document", path)
	}
	for name, c := range contracts {
		if c.Address == "" {
			return nil, serrors.With(serrors.ErrConfig, "contract %s in %s has no address", name, path)
		}
	}

	return contracts, nil
}
