package postgres

import (
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// TableExists probes the table with a one row select. An undefined table
// error means the table is absent.
func (p *PgSQL) TableExists(ctx context.Context, table string) (bool, error) {
	query, args, err := p.Builder.From(table).Select(goqu.L("1")).Limit(1).ToSQL()
	if err != nil {
		return false, fmt.Errorf("could not build probe query: %w", err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		if isUndefinedTable(err) {
			return false, nil
		}

		return false, fmt.Errorf("could not probe table %s in pg: %w", table, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	_ = rows.Next()
	if err := rows.Err(); err != nil {
		if isUndefinedTable(err) {
			return false, nil
		}

		return false, fmt.Errorf("could not probe table %s in pg: %w", table, err)
	}

	return true, nil
}

// CreateTable renders def as CREATE TABLE IF NOT EXISTS. The primary key
// column is declared first.
func (p *PgSQL) CreateTable(ctx context.Context, def domain.TableDef) error {
	ddl, err := CreateTableSQL(def)
	if err != nil {
		return err
	}

	if _, err := p.DB.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("could not create table %s in pg: %w", def.Name, err)
	}

	return nil
}

// ReloadSchemaCache notifies PostgREST to reload its schema cache.
func (p *PgSQL) ReloadSchemaCache(ctx context.Context) error {
	if _, err := p.DB.ExecContext(ctx, `NOTIFY pgrst, 'reload schema'`); err != nil {
		return fmt.Errorf("could not notify pgrst: %w", err)
	}

	return nil
}

// InsertRows inserts rows into table. Calling it without rows is a no-op.
func (p *PgSQL) InsertRows(ctx context.Context, table string, rows ...domain.Row) error {
	if len(rows) == 0 {
		return nil
	}

	if _, err := p.Builder.Insert(table).
		Rows(toRecords(rows)...).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not insert rows into %s in pg: %w", table, err)
	}

	return nil
}

// UpsertRows inserts rows into table, overwriting every non-key column of
// rows colliding on onConflict.
func (p *PgSQL) UpsertRows(ctx context.Context, table string, onConflict string, rows ...domain.Row) error {
	if len(rows) == 0 {
		return nil
	}

	update := goqu.Record{}
	for col := range rows[0] {
		if col == onConflict {
			continue
		}
		update[col] = goqu.I("excluded." + col)
	}

	var conflict exp.ConflictExpression = goqu.DoNothing()
	if len(update) > 0 {
		conflict = goqu.DoUpdate(onConflict, update)
	}

	if _, err := p.Builder.Insert(table).
		Rows(toRecords(rows)...).
		OnConflict(conflict).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert rows into %s in pg: %w", table, err)
	}

	return nil
}

// CreateTableSQL renders the DDL for def.
func CreateTableSQL(def domain.TableDef) (string, error) {
	if def.Name == "" || def.PrimaryKey == "" || len(def.Columns) == 0 {
		return "", serrors.With(serrors.ErrConfig, "table definition %q is incomplete", def.Name)
	}

	cols := make([]string, 0, len(def.Columns))
	hasKey := false
	for _, c := range def.Columns {
		col := pgx.Identifier{c.Name}.Sanitize() + " " + strings.ToUpper(string(c.Type))
		if c.Name == def.PrimaryKey {
			col += " PRIMARY KEY"
			hasKey = true
		}
		cols = append(cols, col)
	}
	if !hasKey {
		return "", serrors.With(serrors.ErrConfig, "primary key %q is not a column of %q", def.PrimaryKey, def.Name)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		pgx.Identifier{def.Name}.Sanitize(),
		strings.Join(cols, ", ")), nil
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UndefinedTable
}

// toRecords converts rows to goqu records. Raw JSON values are passed as text
// so they are rendered as literals castable to jsonb.
func toRecords(rows []domain.Row) []interface{} {
	out := make([]interface{}, len(rows))
	for i, row := range rows {
		rec := make(goqu.Record, len(row))
		for k, v := range row {
			if raw, ok := v.(json.RawMessage); ok {
				v = string(raw)
			}
			rec[k] = v
		}
		out[i] = rec
	}

	return out
}
