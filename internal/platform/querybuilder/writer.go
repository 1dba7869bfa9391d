package querybuilder

import (
	"strconv"
	"strings"
)

// sqlWriter accumulates SQL text and its positional arguments. Placeholders
// are numbered $1, $2, ... in the order values are bound.
type sqlWriter struct {
	sb   strings.Builder
	args []any
}

func (w *sqlWriter) raw(parts ...string) {
	for _, p := range parts {
		w.sb.WriteString(p)
	}
}

func (w *sqlWriter) bind(v any) {
	w.args = append(w.args, v)
	w.sb.WriteByte('$')
	w.sb.WriteString(strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) list(n int, each func(i int)) {
	for i := range n {
		if i > 0 {
			w.sb.WriteString(", ")
		}
		each(i)
	}
}

// expr copies text, binding the next arg in place of each '?'. Surplus '?'
// characters are kept literally.
func (w *sqlWriter) expr(text string, args []any) {
	next := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.sb.WriteByte(text[i])
	}
}

func (w *sqlWriter) where(conds []Condition) {
	for i, c := range conds {
		if i == 0 {
			w.sb.WriteString(" WHERE ")
		} else {
			w.sb.WriteString(" AND ")
		}
		c.writeTo(w)
	}
}

func (w *sqlWriter) suffix(s string) {
	if s != "" {
		w.sb.WriteByte(' ')
		w.sb.WriteString(s)
	}
}

func (w *sqlWriter) result() (string, []any, error) {
	return w.sb.String(), w.args, nil
}
