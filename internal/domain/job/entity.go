package job

import (
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"

	"github.com/google/uuid"
)

type Type string

const (
	TypeFullTime   Type = "FULL_TIME"
	TypePartTime   Type = "PART_TIME"
	TypeInternship Type = "INTERNSHIP"
	TypeContract   Type = "CONTRACT"
	TypeFreelance  Type = "FREELANCE"
	TypeRemote     Type = "REMOTE"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeInternship, TypeContract, TypeFreelance, TypeRemote:
		return true
	default:
		return false
	}
}

type Employer struct {
	ID    uuid.UUID
	Name  *string
	Email string
}

type Job struct {
	ID               uuid.UUID
	EmployerID       uuid.UUID
	Employer         *Employer
	Title            string
	Description      string
	JobType          Type
	Location         *string
	SalaryMin        *int
	SalaryMax        *int
	ExperienceReq    *string
	Deadline         *time.Time
	RequiredSkills   skillset.Set
	IsActive         bool
	Views            int
	ApplicationCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Update struct {
	Title          *string
	Description    *string
	JobType        *Type
	Location       *string
	SalaryMin      *int
	SalaryMax      *int
	ExperienceReq  *string
	Deadline       *time.Time
	RequiredSkills *skillset.Set
	IsActive       *bool
}

func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.JobType == nil && u.Location == nil &&
		u.SalaryMin == nil && u.SalaryMax == nil && u.ExperienceReq == nil && u.Deadline == nil &&
		u.RequiredSkills == nil && u.IsActive == nil
}
