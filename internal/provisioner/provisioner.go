// Package provisioner creates the application tables of the hosted database,
// seeds them and publishes the deployed contracts.
package provisioner

import (
	"ayurdeploy/pkg/artifact"
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/logger"
	"ayurdeploy/pkg/serrors"
	"ayurdeploy/pkg/storage"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Provisioner creates missing tables and upserts contract metadata.
type Provisioner struct {
	tables storage.TableStorage
	db     storage.Storage
	defs   []domain.TableDef
}

// New creates a Provisioner probing and upserting through tables. db is the
// direct database connection used to create and seed missing tables. It may
// be nil, in which case missing tables are reported as configuration errors.
func New(tables storage.TableStorage, db storage.Storage) *Provisioner {
	return &Provisioner{
		tables: tables,
		db:     db,
		defs:   Tables(),
	}
}

// TableStatus is the outcome of provisioning a single table.
type TableStatus struct {
	Name    string
	Created bool
}

// EnsureTables probes every managed table in order. A missing table is
// created and seeded with its placeholder row in one transaction, then made
// visible to the REST API. Existing tables are left untouched.
func (p *Provisioner) EnsureTables(ctx context.Context) ([]TableStatus, error) {
	created := 0
	out := make([]TableStatus, 0, len(p.defs))
	for _, def := range p.defs {
		ctx := logger.WithFields(ctx, zap.String("table", def.Name))

		exists, err := p.tables.TableExists(ctx, def.Name)
		if err != nil {
			return out, fmt.Errorf("could not check table %s: %w", def.Name, err)
		}
		if exists {
			logger.Info(ctx, "table already exists")
			out = append(out, TableStatus{Name: def.Name})

			continue
		}

		if p.db == nil {
			return out, serrors.With(serrors.ErrConfig,
				"table %s does not exist and no database connection is configured to create it", def.Name)
		}

		logger.Info(ctx, "creating table")
		err = p.db.WithTx(ctx, func(tx storage.AllStorage) error {
			if err := tx.CreateTable(ctx, def); err != nil {
				return fmt.Errorf("could not create table %s: %w", def.Name, err)
			}
			if err := tx.InsertRows(ctx, def.Name, def.Seed); err != nil {
				return fmt.Errorf("could not seed table %s: %w", def.Name, err)
			}

			return nil
		})
		if err != nil {
			return out, err
		}
		created++

		if err := p.db.ReloadSchemaCache(ctx); err != nil {
			return out, fmt.Errorf("could not reload schema cache: %w", err)
		}
		logger.Info(ctx, "table created and seeded")
		out = append(out, TableStatus{Name: def.Name, Created: true})
	}

	logger.Info(ctx, "tables provisioned", zap.Int("created", created), zap.Int("total", len(p.defs)))

	return out, nil
}

// PublishContracts upserts every deployed contract into the contracts table,
// keyed by name and in name order.
func (p *Provisioner) PublishContracts(ctx context.Context, contracts domain.DeployedContracts) error {
	names := contracts.Names()
	if len(names) == 0 {
		logger.Warn(ctx, "no deployed contracts to publish")

		return nil
	}

	rows := make([]domain.Row, 0, len(names))
	for _, name := range names {
		c := contracts[name]
		rows = append(rows, domain.Row{
			"name":    name,
			"address": c.Address,
			"abi":     c.ABI,
		})
	}

	if err := p.tables.UpsertRows(ctx, ContractsTable, ContractsKey, rows...); err != nil {
		return fmt.Errorf("could not upsert contracts: %w", err)
	}
	logger.Info(ctx, "contracts published", zap.Strings("contracts", names))

	return nil
}

// Run provisions the tables, then reads the deployed contracts document at
// deployedContractsPath and publishes it.
func (p *Provisioner) Run(ctx context.Context, deployedContractsPath string) error {
	if _, err := p.EnsureTables(ctx); err != nil {
		return err
	}

	contracts, err := artifact.ReadDeployedContracts(deployedContractsPath)
	if err != nil {
		return err
	}

	return p.PublishContracts(ctx, contracts)
}
