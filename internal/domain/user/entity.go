package user

import (
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/google/uuid"
)

type Role string

const (
	RoleYouth    Role = "YOUTH"
	RoleEmployer Role = "EMPLOYER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleYouth, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

type User struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	Role            Role
	Name            *string
	Phone           *string
	Bio             *string
	Location        *string
	ExperienceLevel *string
	Education       *string
	Interests       []string
	Skills          skillset.Set
	ProfileComplete bool
	LastLogin       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProfileUpdate carries the fields a user may change on their own profile.
// Nil means unchanged.
type ProfileUpdate struct {
	Name            *string
	Phone           *string
	Bio             *string
	Location        *string
	ExperienceLevel *string
	Education       *string
	Interests       []string
	Skills          *skillset.Set
}

func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Bio == nil && p.Location == nil &&
		p.ExperienceLevel == nil && p.Education == nil && p.Interests == nil && p.Skills == nil
}
