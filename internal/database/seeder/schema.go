package seeder

import (
	"context"
	"fmt"

	"github.com/Barshamagar123/skill-matcher/internal/database"
)

// tableShape lists the columns a seeder writes. skills names the column that
// holds an encoded skill list.
type tableShape struct {
	table   string
	columns []string
	skills  string
}

var (
	usersShape = tableShape{
		table:   "users",
		columns: []string{"id", "email", "password_hash", "role", "name", "location", "profile_complete"},
		skills:  "skills",
	}
	jobsShape = tableShape{
		table: "jobs",
		columns: []string{
			"id", "employer_id", "title", "description", "job_type", "location",
			"salary_min", "salary_max", "experience_req", "is_active",
		},
		skills: "required_skills",
	}
)

// check fails when migrations have not produced the columns the seeder writes.
// Skill columns must be text since they carry JSON arrays.
func (s tableShape) check(ctx context.Context, q database.Querier) error {
	rows, err := q.Query(ctx,
		`SELECT column_name, data_type FROM information_schema.columns
		 WHERE table_schema = current_schema() AND table_name = $1`,
		s.table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	types := make(map[string]string)
	for rows.Next() {
		var name, typ string
		if err := rows.Scan(&name, &typ); err != nil {
			return err
		}
		types[name] = typ
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(types) == 0 {
		return fmt.Errorf("table %s not found, run migrations first", s.table)
	}
	for _, col := range s.columns {
		if _, ok := types[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", s.table, col)
		}
	}
	if s.skills == "" {
		return nil
	}
	typ, ok := types[s.skills]
	if !ok {
		return fmt.Errorf("schema mismatch: missing column %s.%s", s.table, s.skills)
	}
	if typ != "text" {
		return fmt.Errorf("schema mismatch: %s.%s is %s, want text", s.table, s.skills, typ)
	}
	return nil
}
