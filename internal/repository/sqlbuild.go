package repository

import (
	"fmt"
	"strings"
)

// argList numbers positional parameters as they are appended.
type argList struct {
	args []any
}

func (a *argList) add(v any) string {
	a.args = append(a.args, v)
	return fmt.Sprintf("$%d", len(a.args))
}

type setClause struct {
	argList
	parts []string
}

func (s *setClause) set(col string, v any) {
	s.parts = append(s.parts, col+" = "+s.add(v))
}

func (s *setClause) raw(expr string) {
	s.parts = append(s.parts, expr)
}

func (s *setClause) empty() bool {
	return len(s.parts) == 0
}

func (s *setClause) String() string {
	return strings.Join(s.parts, ", ")
}

type whereClause struct {
	argList
	conds []string
}

func (w *whereClause) cond(format string, v ...any) {
	ph := make([]any, 0, len(v))
	for _, x := range v {
		ph = append(ph, w.add(x))
	}
	w.conds = append(w.conds, fmt.Sprintf(format, ph...))
}

func (w *whereClause) fixed(cond string) {
	w.conds = append(w.conds, cond)
}

func (w *whereClause) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
