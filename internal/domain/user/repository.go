package user

import (
	"context"
	"errors"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	CreateUser(ctx context.Context, u User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileUpdate) error
	UpdateSkills(ctx context.Context, id uuid.UUID, skills skillset.Set) error
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// ListSkilledYouth returns youth profiles marked complete, newest first.
	ListSkilledYouth(ctx context.Context, limit int) ([]User, error)
}
