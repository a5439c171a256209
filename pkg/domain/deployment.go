package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeploymentID uniquely identifies a recorded deployment.
type DeploymentID uuid.UUID

// String returns the canonical UUID representation.
func (id DeploymentID) String() string { return uuid.UUID(id).String() }

// Deployment describes a contract creation transaction that was mined.
type Deployment struct {
	// ID is assigned by the storage layer.
	ID DeploymentID `json:"id"`
	// RunID groups the deployments made by one command invocation.
	RunID uuid.UUID `json:"runId"`

	ContractName    string `json:"contractName"`
	ContractAddress string `json:"contractAddress"`
	Deployer        string `json:"deployer"`
	TxHash          string `json:"txHash"`
	ChainID         uint64 `json:"chainId"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	CompilerVersion string `json:"compilerVersion"`

	CreatedAt time.Time `json:"createdAt"`
}
