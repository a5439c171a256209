package domain

// ColumnType enumerates the column types used by provisioned tables.
type ColumnType string

const (
	// ColumnText is a free-form text column.
	ColumnText ColumnType = "text"
	// ColumnNumeric is an arbitrary precision number column.
	ColumnNumeric ColumnType = "numeric"
	// ColumnDate is a calendar date column.
	ColumnDate ColumnType = "date"
	// ColumnJSON is a binary JSON column.
	ColumnJSON ColumnType = "jsonb"
)

// Column is a single column of a provisioned table.
type Column struct {
	Name string
	Type ColumnType
}

// Row is a single record keyed by column name.
type Row map[string]any

// TableDef is the fixed definition of a table the provisioner manages: its
// columns, the primary key and the placeholder row seeded after creation.
type TableDef struct {
	Name       string
	PrimaryKey string
	Columns    []Column
	Seed       Row
}

// ColumnNames returns the column names in declaration order.
func (t TableDef) ColumnNames() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}

	return out
}
