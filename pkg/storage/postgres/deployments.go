package postgres

import (
	"ayurdeploy/pkg/domain"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	deploymentsTable = "deployments"
)

// StoreDeployments inserts deployments and returns them as stored, with the
// generated IDs and timestamps.
func (p *PgSQL) StoreDeployments(ctx context.Context, deployments ...domain.Deployment) ([]domain.Deployment, error) {
	if len(deployments) == 0 {
		return nil, nil
	}

	rows := make([]PgDeployment, len(deployments))
	for i := range rows {
		rows[i].FromDomain(deployments[i])
	}

	var result []PgDeployment
	if err := p.Builder.Insert(deploymentsTable).
		Rows(rows).
		Returning(&PgDeployment{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store deployments into pg: %w", err)
	}

	return pgDeploymentsToDomain(result), nil
}

// Deployments returns up to limit deployments ordered from newest to oldest,
// optionally filtered by contract name.
func (p *PgSQL) Deployments(ctx context.Context, contractName string, limit uint) ([]domain.Deployment, error) {
	q := p.Builder.From(deploymentsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc())
	if contractName != "" {
		q = q.Where(goqu.I("contract_name").Eq(contractName))
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var result []PgDeployment
	if err := q.ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not get deployments from pg: %w", err)
	}

	return pgDeploymentsToDomain(result), nil
}
