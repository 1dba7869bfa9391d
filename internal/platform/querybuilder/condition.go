package querybuilder

// Condition is one WHERE predicate. Predicates passed together are joined
// with AND.
type Condition interface {
	writeTo(w *sqlWriter)
}

type conditionFunc func(w *sqlWriter)

func (f conditionFunc) writeTo(w *sqlWriter) { f(w) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.raw(column, " = ")
		w.bind(value)
	})
}

// In renders column IN (...). An empty list matches no rows.
func In(column string, values []any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		if len(values) == 0 {
			w.raw("1=0")
			return
		}
		w.raw(column, " IN (")
		w.list(len(values), func(i int) { w.bind(values[i]) })
		w.raw(")")
	})
}

func InIDs(column string, ids []int64) Condition {
	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	return In(column, values)
}

func IsNull(column string) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.raw(column, " IS NULL")
	})
}

// Expr is a raw predicate; each ? is bound to the next arg.
func Expr(text string, args ...any) Condition {
	return conditionFunc(func(w *sqlWriter) {
		w.expr(text, args)
	})
}
