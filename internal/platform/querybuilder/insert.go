package querybuilder

import (
	"fmt"
	"strings"
)

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	tail    string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append(b.columns[:0:0], columns...)
	return b
}

// Values adds one row. Call it repeatedly for a multi-row insert.
func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix is appended verbatim, e.g. RETURNING id or ON CONFLICT DO NOTHING.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.tail = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	switch {
	case strings.TrimSpace(b.table) == "":
		return "", nil, fmt.Errorf("insert: table is required")
	case len(b.columns) == 0:
		return "", nil, fmt.Errorf("insert into %s: columns are required", b.table)
	case len(b.rows) == 0:
		return "", nil, fmt.Errorf("insert into %s: values are required", b.table)
	}
	for i, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert into %s: row %d has %d values for %d columns", b.table, i, len(row), len(b.columns))
		}
	}

	var w sqlWriter
	w.raw("INSERT INTO ", b.table, " (", strings.Join(b.columns, ", "), ") VALUES ")
	w.list(len(b.rows), func(i int) {
		row := b.rows[i]
		w.raw("(")
		w.list(len(row), func(j int) { w.bind(row[j]) })
		w.raw(")")
	})
	w.suffix(b.tail)
	return w.result()
}
