package querybuilder

import (
	"fmt"
	"strings"
)

type DeleteBuilder struct {
	table string
	conds []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.conds = append(b.conds, conditions...)
	return b
}

// ToSQL refuses to build a DELETE without a WHERE clause.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete: table is required")
	}
	if len(b.conds) == 0 {
		return "", nil, fmt.Errorf("delete from %s: a where clause is required", b.table)
	}

	var w sqlWriter
	w.raw("DELETE FROM ", b.table)
	w.where(b.conds)
	return w.result()
}
