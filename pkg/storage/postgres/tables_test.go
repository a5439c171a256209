package postgres_test

import (
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/serrors"
	"ayurdeploy/pkg/storage/postgres"
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func contractsDef() domain.TableDef {
	return domain.TableDef{
		Name:       "contracts",
		PrimaryKey: "name",
		Columns: []domain.Column{
			{Name: "name", Type: domain.ColumnText},
			{Name: "address", Type: domain.ColumnText},
			{Name: "abi", Type: domain.ColumnJSON},
		},
	}
}

func TestCreateTableSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		def     domain.TableDef
		want    string
		wantErr bool
	}{
		{
			name: "contracts",
			def:  contractsDef(),
			want: `CREATE TABLE IF NOT EXISTS "contracts" ("name" TEXT PRIMARY KEY, "address" TEXT, "abi" JSONB)`,
		},
		{
			name: "mixed types",
			def: domain.TableDef{
				Name:       "distributor_inventory",
				PrimaryKey: "batch_id",
				Columns: []domain.Column{
					{Name: "batch_id", Type: domain.ColumnText},
					{Name: "quantity", Type: domain.ColumnNumeric},
					{Name: "received", Type: domain.ColumnDate},
				},
			},
			want: `CREATE TABLE IF NOT EXISTS "distributor_inventory" ` +
				`("batch_id" TEXT PRIMARY KEY, "quantity" NUMERIC, "received" DATE)`,
		},
		{
			name: "quoted identifiers",
			def: domain.TableDef{
				Name:       `we"ird`,
				PrimaryKey: "id",
				Columns:    []domain.Column{{Name: "id", Type: domain.ColumnText}},
			},
			want: `CREATE TABLE IF NOT EXISTS "we""ird" ("id" TEXT PRIMARY KEY)`,
		},
		{
			name:    "missing columns",
			def:     domain.TableDef{Name: "empty", PrimaryKey: "id"},
			wantErr: true,
		},
		{
			name: "unknown primary key",
			def: domain.TableDef{
				Name:       "t",
				PrimaryKey: "id",
				Columns:    []domain.Column{{Name: "other", Type: domain.ColumnText}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := postgres.CreateTableSQL(tt.def)
			if tt.wantErr {
				require.ErrorIs(t, err, serrors.ErrConfig)

				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPgSQL_Tables(t *testing.T) {
	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	def := contractsDef()
	db := pgSQL.DB.(*sql.DB)

	t.Run("missing table is reported absent", func(t *testing.T) {
		exists, err := pgSQL.TableExists(ctx, def.Name)
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("create table is idempotent", func(t *testing.T) {
		require.NoError(t, pgSQL.CreateTable(ctx, def))
		require.NoError(t, pgSQL.CreateTable(ctx, def))

		exists, err := pgSQL.TableExists(ctx, def.Name)
		require.NoError(t, err)
		require.True(t, exists)
	})

	t.Run("reload schema cache without listeners", func(t *testing.T) {
		require.NoError(t, pgSQL.ReloadSchemaCache(ctx))
	})

	t.Run("insert rows", func(t *testing.T) {
		require.NoError(t, pgSQL.InsertRows(ctx, def.Name))
		require.NoError(t, pgSQL.InsertRows(ctx, def.Name, domain.Row{
			"name":    "dummy",
			"address": "dummy",
			"abi":     json.RawMessage(`{}`),
		}))

		var count int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contracts`).Scan(&count))
		require.Equal(t, 1, count)

		err := pgSQL.InsertRows(ctx, def.Name, domain.Row{
			"name":    "dummy",
			"address": "dummy",
			"abi":     json.RawMessage(`{}`),
		})
		require.Error(t, err, "duplicate primary key must fail a plain insert")
	})

	t.Run("upsert rows", func(t *testing.T) {
		abi := json.RawMessage(`[{"type":"constructor","inputs":[]}]`)
		require.NoError(t, pgSQL.UpsertRows(ctx, def.Name, "name",
			domain.Row{"name": "Herbs", "address": "0x0000000000000000000000000000000000000001", "abi": abi},
			domain.Row{"name": "dummy", "address": "0x0000000000000000000000000000000000000002", "abi": abi},
		))
		require.NoError(t, pgSQL.UpsertRows(ctx, def.Name, "name",
			domain.Row{"name": "Herbs", "address": "0x0000000000000000000000000000000000000003", "abi": abi},
		))

		var address string
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT address FROM contracts WHERE name = 'Herbs'`).Scan(&address))
		require.Equal(t, "0x0000000000000000000000000000000000000003", address)

		var abiType string
		require.NoError(t, db.QueryRowContext(ctx,
			`SELECT abi->0->>'type' FROM contracts WHERE name = 'dummy'`).Scan(&abiType))
		require.Equal(t, "constructor", abiType)

		var count int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contracts`).Scan(&count))
		require.Equal(t, 2, count)
	})
}
