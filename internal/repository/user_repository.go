package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/database"
	"github.com/Barshamagar123/skill-matcher/internal/database/postgres"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const userColumns = `id, email, password_hash, role, name, phone, bio, location,
	experience_level, education, interests, skills, profile_complete, last_login,
	created_at, updated_at`

type PostgresUserRepository struct {
	db  database.DB
	log *zap.Logger
}

var _ user.Repository = (*PostgresUserRepository)(nil)

func NewPostgresUserRepository(db database.DB, log *zap.Logger) *PostgresUserRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostgresUserRepository{db: db, log: log.Named("user_repository")}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, name, skills, profile_complete)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.PasswordHash, string(u.Role), u.Name,
		skillset.Encode(u.Skills), u.ProfileComplete,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scanUser(row)
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return r.scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, in user.ProfileUpdate) error {
	var s setClause
	if in.Name != nil {
		s.set("name", *in.Name)
	}
	if in.Phone != nil {
		s.set("phone", *in.Phone)
	}
	if in.Bio != nil {
		s.set("bio", *in.Bio)
	}
	if in.Location != nil {
		s.set("location", *in.Location)
	}
	if in.ExperienceLevel != nil {
		s.set("experience_level", *in.ExperienceLevel)
	}
	if in.Education != nil {
		s.set("education", *in.Education)
	}
	if in.Interests != nil {
		s.set("interests", encodeStrings(in.Interests))
	}
	if in.Skills != nil {
		s.set("skills", skillset.Encode(*in.Skills))
		s.set("profile_complete", !in.Skills.IsEmpty())
	}
	if s.empty() {
		return nil
	}
	s.raw("updated_at = now()")

	q := fmt.Sprintf(`UPDATE users SET %s WHERE id = %s`, s.String(), s.add(id))
	n, err := r.db.Exec(ctx, q, s.args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) UpdateSkills(ctx context.Context, id uuid.UUID, skills skillset.Set) error {
	return r.UpdateProfile(ctx, id, user.ProfileUpdate{Skills: &skills})
}

func (r *PostgresUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = $1 WHERE id = $2`, at, id)
	return err
}

func (r *PostgresUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) ListSkilledYouth(ctx context.Context, limit int) ([]user.User, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE role = $1 AND profile_complete = true AND skills IS NOT NULL
		 ORDER BY created_at DESC, id ASC
		 LIMIT $2`,
		string(user.RoleYouth), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) scanUser(row database.Row) (user.User, error) {
	var (
		u         user.User
		role      string
		interests *string
		skills    *string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &role, &u.Name, &u.Phone, &u.Bio, &u.Location,
		&u.ExperienceLevel, &u.Education, &interests, &skills, &u.ProfileComplete, &u.LastLogin,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}

	u.Role = user.Role(role)
	u.Interests = decodeStrings(interests)
	u.Skills = decodeSkills(r.log, "user", u.ID, skills)
	return u, nil
}
