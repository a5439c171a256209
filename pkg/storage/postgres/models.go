package postgres

import (
	"ayurdeploy/pkg/domain"
	"time"

	"github.com/google/uuid"
)

// PgDeployment is the row shape of the deployments table.
type PgDeployment struct {
	ID    uuid.UUID `db:"id"     goqu:"skipinsert"`
	RunID uuid.UUID `db:"run_id"`

	ContractName    string `db:"contract_name"`
	ContractAddress string `db:"contract_address"`
	Deployer        string `db:"deployer"`
	TxHash          string `db:"tx_hash"`
	ChainID         int64  `db:"chain_id"`
	BlockNumber     int64  `db:"block_number"`
	GasUsed         int64  `db:"gas_used"`
	CompilerVersion string `db:"compiler_version"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgDeployment) ToDomain() domain.Deployment {
	return domain.Deployment{
		ID:              domain.DeploymentID(p.ID),
		RunID:           p.RunID,
		ContractName:    p.ContractName,
		ContractAddress: p.ContractAddress,
		Deployer:        p.Deployer,
		TxHash:          p.TxHash,
		ChainID:         uint64(p.ChainID),     //nolint: gosec
		BlockNumber:     uint64(p.BlockNumber), //nolint: gosec
		GasUsed:         uint64(p.GasUsed),     //nolint: gosec
		CompilerVersion: p.CompilerVersion,
		CreatedAt:       p.CreatedAt,
	}
}

func (p *PgDeployment) FromDomain(d domain.Deployment) {
	*p = PgDeployment{
		ID:              uuid.UUID(d.ID),
		RunID:           d.RunID,
		ContractName:    d.ContractName,
		ContractAddress: d.ContractAddress,
		Deployer:        d.Deployer,
		TxHash:          d.TxHash,
		ChainID:         int64(d.ChainID),     //nolint: gosec
		BlockNumber:     int64(d.BlockNumber), //nolint: gosec
		GasUsed:         int64(d.GasUsed),     //nolint: gosec
		CompilerVersion: d.CompilerVersion,
		CreatedAt:       d.CreatedAt,
	}
}

func pgDeploymentsToDomain(deployments []PgDeployment) []domain.Deployment {
	out := make([]domain.Deployment, 0, len(deployments))
	for _, d := range deployments {
		out = append(out, d.ToDomain())
	}

	return out
}
