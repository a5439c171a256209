// Package storage defines the core storage interfaces that the application relies on.
// It abstracts table provisioning, seeding and the deployment history so that
// different backends (the Supabase REST API, a direct PostgreSQL connection)
// can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"ayurdeploy/pkg/domain"
	"context"
)

// TableStorage reads and writes rows of provisioned tables.
type TableStorage interface {
	// TableExists probes the table with a minimal select. A missing relation
	// is reported as (false, nil), any other failure as an error.
	TableExists(ctx context.Context, table string) (bool, error)
	// InsertRows inserts the given rows into the table.
	InsertRows(ctx context.Context, table string, rows ...domain.Row) error
	// UpsertRows inserts the given rows, updating existing rows that collide
	// on the onConflict column.
	UpsertRows(ctx context.Context, table string, onConflict string, rows ...domain.Row) error
}

// SchemaStorage manages table definitions. Only backends with DDL access
// implement it.
type SchemaStorage interface {
	// CreateTable creates the table described by def when it does not exist.
	CreateTable(ctx context.Context, def domain.TableDef) error
	// ReloadSchemaCache asks PostgREST to reload its schema cache so newly
	// created tables become visible to the REST API.
	ReloadSchemaCache(ctx context.Context) error
}

// DeploymentStorage keeps the history of deployments made by this tool.
type DeploymentStorage interface {
	// StoreDeployments inserts the deployments and returns them as stored,
	// including generated IDs and timestamps.
	StoreDeployments(ctx context.Context, deployments ...domain.Deployment) ([]domain.Deployment, error)
	// Deployments returns the most recent deployments, newest first. An empty
	// contractName matches every contract.
	Deployments(ctx context.Context, contractName string, limit uint) ([]domain.Deployment, error)
}

// AllStorage is a composite interface that includes all storage capabilities
// offered by a direct database connection.
type AllStorage interface {
	TableStorage
	SchemaStorage
	DeploymentStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes the provided callback with it, and
	// then commits on success or rolls back if the callback returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
