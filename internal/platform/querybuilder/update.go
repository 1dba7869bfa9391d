package querybuilder

import (
	"fmt"
	"strings"
)

type assignment struct {
	column string
	write  func(w *sqlWriter)
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	conds []Condition
	tail  string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, write: func(w *sqlWriter) { w.bind(value) }})
	return b
}

// SetExpr assigns a raw expression such as NOW() or goal_count + ?.
func (b *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, write: func(w *sqlWriter) { w.expr(expr, args) }})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.conds = append(b.conds, conditions...)
	return b
}

func (b *UpdateBuilder) Suffix(sql string) *UpdateBuilder {
	b.tail = strings.TrimSpace(sql)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update: table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update %s: no columns to set", b.table)
	}

	var w sqlWriter
	w.raw("UPDATE ", b.table, " SET ")
	w.list(len(b.sets), func(i int) {
		w.raw(b.sets[i].column, " = ")
		b.sets[i].write(&w)
	})
	w.where(b.conds)
	w.suffix(b.tail)
	return w.result()
}
