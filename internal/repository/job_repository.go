package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Barshamagar123/skill-matcher/internal/database"
	"github.com/Barshamagar123/skill-matcher/internal/database/postgres"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const jobSelect = `SELECT j.id, j.employer_id, j.title, j.description, j.job_type, j.location,
	j.salary_min, j.salary_max, j.experience_req, j.deadline, j.required_skills,
	j.is_active, j.views, j.created_at, j.updated_at,
	u.name, u.email,
	(SELECT COUNT(1) FROM applications a WHERE a.job_id = j.id)
	FROM jobs j
	JOIN users u ON u.id = j.employer_id`

// poolOrder makes equal-scored matches come out in a stable order.
const poolOrder = ` ORDER BY j.created_at DESC, j.id ASC`

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusAll      JobStatus = "all"
)

type JobFilter struct {
	Search     string
	JobType    string
	Location   string
	Experience string
	MinSalary  *int
	MaxSalary  *int
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

type LocationCount struct {
	Location string
	Count    int
}

type TypeCount struct {
	Type  job.Type
	Count int
}

type EmployerJobStats struct {
	TotalJobs  int
	ActiveJobs int
	TotalViews int
	JobsByType map[job.Type]int
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Job, error)
	Update(ctx context.Context, id uuid.UUID, in job.Update) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, f JobFilter) ([]job.Job, int, error)
	ListByEmployer(ctx context.Context, employerID uuid.UUID, status JobStatus) ([]job.Job, error)

	// ListActivePool returns at most limit active jobs, newest first.
	ListActivePool(ctx context.Context, limit int) ([]job.Job, error)
	PopularLocations(ctx context.Context, limit int) ([]LocationCount, error)
	CountActiveByType(ctx context.Context) ([]TypeCount, error)
	EmployerStats(ctx context.Context, employerID uuid.UUID) (EmployerJobStats, error)
}

type PostgresJobRepository struct {
	db  database.DB
	log *zap.Logger
}

func NewPostgresJobRepository(db database.DB, log *zap.Logger) *PostgresJobRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostgresJobRepository{db: db, log: log.Named("job_repository")}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, employer_id, title, description, job_type, location,
		 salary_min, salary_max, experience_req, deadline, required_skills, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)`,
		j.ID, j.EmployerID, j.Title, j.Description, string(j.JobType), j.Location,
		j.SalaryMin, j.SalaryMax, j.ExperienceReq, j.Deadline, skillset.Encode(j.RequiredSkills),
		j.IsActive, j.CreatedAt,
	)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return ErrReferenceMissing
		}
		return err
	}
	return nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	return r.scanJob(r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id))
}

func (r *PostgresJobRepository) Update(ctx context.Context, id uuid.UUID, in job.Update) error {
	var s setClause
	if in.Title != nil {
		s.set("title", *in.Title)
	}
	if in.Description != nil {
		s.set("description", *in.Description)
	}
	if in.JobType != nil {
		s.set("job_type", string(*in.JobType))
	}
	if in.Location != nil {
		s.set("location", *in.Location)
	}
	if in.SalaryMin != nil {
		s.set("salary_min", *in.SalaryMin)
	}
	if in.SalaryMax != nil {
		s.set("salary_max", *in.SalaryMax)
	}
	if in.ExperienceReq != nil {
		s.set("experience_req", *in.ExperienceReq)
	}
	if in.Deadline != nil {
		s.set("deadline", *in.Deadline)
	}
	if in.RequiredSkills != nil {
		s.set("required_skills", skillset.Encode(*in.RequiredSkills))
	}
	if in.IsActive != nil {
		s.set("is_active", *in.IsActive)
	}
	if s.empty() {
		return nil
	}
	s.raw("updated_at = now()")

	q := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = %s`, s.String(), s.add(id))
	n, err := r.db.Exec(ctx, q, s.args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	inactive := false
	return r.Update(ctx, id, job.Update{IsActive: &inactive})
}

func (r *PostgresJobRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id = $1`, id)
	return err
}

// sortColumns accepts the JSON field names and the column names.
var sortColumns = map[string]string{
	"createdAt":  "j.created_at",
	"created_at": "j.created_at",
	"salaryMin":  "j.salary_min",
	"salary_min": "j.salary_min",
	"salaryMax":  "j.salary_max",
	"salary_max": "j.salary_max",
	"title":      "j.title",
	"views":      "j.views",
}

func orderBy(sortBy, sortOrder string) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "j.created_at"
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s NULLS LAST, j.id ASC", col, dir)
}

func (r *PostgresJobRepository) List(ctx context.Context, f JobFilter) ([]job.Job, int, error) {
	var w whereClause
	w.fixed("j.is_active = true")
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + s + "%"
		w.cond("(j.title ILIKE %s OR j.description ILIKE %s)", like, like)
	}
	if f.JobType != "" {
		w.cond("j.job_type = %s", f.JobType)
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		w.cond("j.location ILIKE %s", "%"+l+"%")
	}
	if e := strings.TrimSpace(f.Experience); e != "" {
		w.cond("j.experience_req ILIKE %s", "%"+e+"%")
	}
	if f.MinSalary != nil {
		w.cond("j.salary_min >= %s", *f.MinSalary)
	}
	if f.MaxSalary != nil {
		w.cond("j.salary_max <= %s", *f.MaxSalary)
	}

	var total int
	countQ := `SELECT COUNT(1) FROM jobs j` + w.String()
	if err := r.db.QueryRow(ctx, countQ, w.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	where := w.String()
	q := jobSelect + where + orderBy(f.SortBy, f.SortOrder) +
		fmt.Sprintf(" LIMIT %s OFFSET %s", w.add(limit), w.add(offset))

	jobs, err := r.queryJobs(ctx, q, w.args...)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *PostgresJobRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID, status JobStatus) ([]job.Job, error) {
	var w whereClause
	w.cond("j.employer_id = %s", employerID)
	switch status {
	case JobStatusActive:
		w.fixed("j.is_active = true")
	case JobStatusInactive:
		w.fixed("j.is_active = false")
	}
	return r.queryJobs(ctx, jobSelect+w.String()+poolOrder, w.args...)
}

func (r *PostgresJobRepository) ListActivePool(ctx context.Context, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 100
	}
	return r.queryJobs(ctx, jobSelect+` WHERE j.is_active = true`+poolOrder+` LIMIT $1`, limit)
}

func (r *PostgresJobRepository) PopularLocations(ctx context.Context, limit int) ([]LocationCount, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx,
		`SELECT location, COUNT(1) AS c
		 FROM jobs
		 WHERE is_active = true AND location IS NOT NULL AND location <> ''
		 GROUP BY location
		 ORDER BY c DESC, location ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]LocationCount, 0)
	for rows.Next() {
		var lc LocationCount
		if err := rows.Scan(&lc.Location, &lc.Count); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) CountActiveByType(ctx context.Context) ([]TypeCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_type, COUNT(1) AS c
		 FROM jobs
		 WHERE is_active = true
		 GROUP BY job_type
		 ORDER BY c DESC, job_type ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TypeCount, 0)
	for rows.Next() {
		var (
			t string
			c int
		)
		if err := rows.Scan(&t, &c); err != nil {
			return nil, err
		}
		out = append(out, TypeCount{Type: job.Type(t), Count: c})
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) EmployerStats(ctx context.Context, employerID uuid.UUID) (EmployerJobStats, error) {
	st := EmployerJobStats{JobsByType: map[job.Type]int{}}

	err := r.db.QueryRow(ctx,
		`SELECT COUNT(1), COUNT(1) FILTER (WHERE is_active), COALESCE(SUM(views), 0)
		 FROM jobs
		 WHERE employer_id = $1`,
		employerID,
	).Scan(&st.TotalJobs, &st.ActiveJobs, &st.TotalViews)
	if err != nil {
		return EmployerJobStats{}, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT job_type, COUNT(1) FROM jobs WHERE employer_id = $1 GROUP BY job_type`,
		employerID,
	)
	if err != nil {
		return EmployerJobStats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t string
			c int
		)
		if err := rows.Scan(&t, &c); err != nil {
			return EmployerJobStats{}, err
		}
		st.JobsByType[job.Type(t)] = c
	}
	if err := rows.Err(); err != nil {
		return EmployerJobStats{}, err
	}
	return st, nil
}

func (r *PostgresJobRepository) queryJobs(ctx context.Context, q string, args ...any) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := r.scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) scanJob(row database.Row) (job.Job, error) {
	var (
		j        job.Job
		jobType  string
		skills   *string
		employer job.Employer
	)
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.Title, &j.Description, &jobType, &j.Location,
		&j.SalaryMin, &j.SalaryMax, &j.ExperienceReq, &j.Deadline, &skills,
		&j.IsActive, &j.Views, &j.CreatedAt, &j.UpdatedAt,
		&employer.Name, &employer.Email,
		&j.ApplicationCount,
	)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}

	j.JobType = job.Type(jobType)
	j.RequiredSkills = decodeSkills(r.log, "job", j.ID, skills)
	employer.ID = j.EmployerID
	j.Employer = &employer
	return j, nil
}
