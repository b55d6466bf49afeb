package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/database"
	"github.com/Barshamagar123/skill-matcher/internal/database/postgres"
	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	CountByStatusForUser(ctx context.Context, userID uuid.UUID) (map[application.Status]int, error)
	CountByStatusForEmployer(ctx context.Context, employerID uuid.UUID) (map[application.Status]int, error)
	CountRecentForEmployer(ctx context.Context, employerID uuid.UUID, since time.Time) (int, error)
	FindByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (application.Application, error)

	// ListApplicantSkills returns the skill sets of the most recent applicants
	// to the employer's jobs, one entry per application.
	ListApplicantSkills(ctx context.Context, employerID uuid.UUID, limit int) ([]skillset.Set, error)
}

type PostgresApplicationRepository struct {
	db  database.DB
	log *zap.Logger
}

func NewPostgresApplicationRepository(db database.DB, log *zap.Logger) *PostgresApplicationRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostgresApplicationRepository{db: db, log: log.Named("application_repository")}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, user_id, status, match_percentage, applied_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.JobID, a.UserID, string(a.Status), a.MatchPercentage, a.AppliedAt,
	)
	switch {
	case err == nil:
		return nil
	case postgres.IsUniqueViolation(err):
		return ErrApplicationExists
	case postgres.IsForeignKeyViolation(err):
		return ErrReferenceMissing
	default:
		return err
	}
}

func (r *PostgresApplicationRepository) CountByStatusForUser(ctx context.Context, userID uuid.UUID) (map[application.Status]int, error) {
	return r.countByStatus(ctx,
		`SELECT status, COUNT(1) FROM applications WHERE user_id = $1 GROUP BY status`,
		userID,
	)
}

func (r *PostgresApplicationRepository) CountByStatusForEmployer(ctx context.Context, employerID uuid.UUID) (map[application.Status]int, error) {
	return r.countByStatus(ctx,
		`SELECT a.status, COUNT(1)
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.employer_id = $1
		 GROUP BY a.status`,
		employerID,
	)
}

func (r *PostgresApplicationRepository) CountRecentForEmployer(ctx context.Context, employerID uuid.UUID, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(1)
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.employer_id = $1 AND a.applied_at >= $2`,
		employerID, since,
	).Scan(&n)
	return n, err
}

func (r *PostgresApplicationRepository) FindByJobAndUser(ctx context.Context, jobID, userID uuid.UUID) (application.Application, error) {
	var (
		a      application.Application
		status string
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, job_id, user_id, status, match_percentage, applied_at
		 FROM applications
		 WHERE job_id = $1 AND user_id = $2`,
		jobID, userID,
	).Scan(&a.ID, &a.JobID, &a.UserID, &status, &a.MatchPercentage, &a.AppliedAt)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}

func (r *PostgresApplicationRepository) countByStatus(ctx context.Context, q string, id uuid.UUID) (map[application.Status]int, error) {
	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[application.Status]int{}
	for rows.Next() {
		var (
			s string
			c int
		)
		if err := rows.Scan(&s, &c); err != nil {
			return nil, err
		}
		out[application.Status(s)] = c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListApplicantSkills(ctx context.Context, employerID uuid.UUID, limit int) ([]skillset.Set, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT u.id, u.skills
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN users u ON u.id = a.user_id
		 WHERE j.employer_id = $1
		 ORDER BY a.applied_at DESC, a.id ASC
		 LIMIT $2`,
		employerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skillset.Set, 0)
	for rows.Next() {
		var (
			id     uuid.UUID
			skills *string
		)
		if err := rows.Scan(&id, &skills); err != nil {
			return nil, err
		}
		out = append(out, decodeSkills(r.log, "user", id, skills))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
