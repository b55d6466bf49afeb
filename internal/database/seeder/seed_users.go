package seeder

import (
	"context"
	"fmt"

	"github.com/Barshamagar123/skill-matcher/internal/database"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := usersShape.check(ctx, db); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	items := []struct {
		Email    string
		Role     user.Role
		Name     string
		Location string
		Skills   skillset.Set
	}{
		{Email: DemoEmployerEmail, Role: user.RoleEmployer, Name: "Demo Employer", Location: "Kathmandu"},
		{
			Email:    DemoYouthEmail,
			Role:     user.RoleYouth,
			Name:     "Demo Youth",
			Location: "Pokhara",
			Skills:   skillset.New("JavaScript", "React", "Node.js", "SQL"),
		},
	}

	return database.InTx(ctx, db, func(q database.Querier) error {
		for _, it := range items {
			_, err := q.Exec(ctx,
				`INSERT INTO users (id, email, password_hash, role, name, location, skills, profile_complete)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
				 ON CONFLICT (email) DO NOTHING`,
				uuid.New(), it.Email, string(hash), string(it.Role), it.Name, it.Location,
				skillset.Encode(it.Skills), !it.Skills.IsEmpty(),
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
