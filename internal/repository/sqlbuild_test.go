package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetClause(t *testing.T) {
	var s setClause
	assert.True(t, s.empty())

	s.set("title", "Go dev")
	s.set("views", 3)
	s.raw("updated_at = now()")
	where := s.add("id-1")

	assert.Equal(t, "title = $1, views = $2, updated_at = now()", s.String())
	assert.Equal(t, "$3", where)
	assert.Equal(t, []any{"Go dev", 3, "id-1"}, s.args)
}

func TestWhereClause(t *testing.T) {
	var w whereClause
	assert.Equal(t, "", w.String())

	w.fixed("j.is_active = true")
	w.cond("(j.title ILIKE %s OR j.description ILIKE %s)", "%go%", "%go%")
	w.cond("j.salary_min >= %s", 100)

	assert.Equal(t, " WHERE j.is_active = true AND (j.title ILIKE $1 OR j.description ILIKE $2) AND j.salary_min >= $3", w.String())
	assert.Len(t, w.args, 3)
}

func TestOrderBy(t *testing.T) {
	assert.Equal(t, " ORDER BY j.created_at DESC NULLS LAST, j.id ASC", orderBy("", ""))
	assert.Equal(t, " ORDER BY j.salary_min ASC NULLS LAST, j.id ASC", orderBy("salary_min", "asc"))
	assert.Equal(t, " ORDER BY j.salary_max DESC NULLS LAST, j.id ASC", orderBy("salaryMax", "DESC"))
	assert.Equal(t, " ORDER BY j.created_at DESC NULLS LAST, j.id ASC", orderBy("password_hash; --", "asc; drop"))
}

func TestDecodeStrings(t *testing.T) {
	in := `["music","coding"]`
	assert.Equal(t, []string{"music", "coding"}, decodeStrings(&in))
	bad := "{"
	assert.Equal(t, []string{}, decodeStrings(&bad))
	assert.Equal(t, []string{}, decodeStrings(nil))
	assert.Nil(t, encodeStrings(nil))
}
