package dto

import (
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"
	"github.com/Barshamagar123/skill-matcher/internal/usecase"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID              uuid.UUID    `json:"id"`
	Email           string       `json:"email"`
	Role            string       `json:"role"`
	Name            *string      `json:"name"`
	Phone           *string      `json:"phone,omitempty"`
	Bio             *string      `json:"bio"`
	Location        *string      `json:"location"`
	ExperienceLevel *string      `json:"experienceLevel"`
	Education       *string      `json:"education"`
	Interests       []string     `json:"interests"`
	Skills          skillset.Set `json:"skills"`
	ProfileComplete bool         `json:"profileComplete"`
	LastLogin       *time.Time   `json:"lastLogin,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

func NewUserResponse(u user.User) UserResponse {
	interests := u.Interests
	if interests == nil {
		interests = []string{}
	}
	return UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Role:            string(u.Role),
		Name:            u.Name,
		Phone:           u.Phone,
		Bio:             u.Bio,
		Location:        u.Location,
		ExperienceLevel: u.ExperienceLevel,
		Education:       u.Education,
		Interests:       interests,
		Skills:          u.Skills,
		ProfileComplete: u.ProfileComplete,
		LastLogin:       u.LastLogin,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}

type UpdateProfileRequest struct {
	Name            *string   `json:"name" validate:"omitempty,max=100"`
	Phone           *string   `json:"phone" validate:"omitempty,max=30"`
	Bio             *string   `json:"bio" validate:"omitempty,max=1000"`
	Location        *string   `json:"location" validate:"omitempty,max=100"`
	ExperienceLevel *string   `json:"experienceLevel" validate:"omitempty,max=50"`
	Education       *string   `json:"education" validate:"omitempty,max=200"`
	Interests       []string  `json:"interests"`
	Skills          *[]string `json:"skills"`
}

func (r *UpdateProfileRequest) Validate() error {
	return validate.Struct(r)
}

func (r UpdateProfileRequest) ToDomain() user.ProfileUpdate {
	out := user.ProfileUpdate{
		Name:            r.Name,
		Phone:           r.Phone,
		Bio:             r.Bio,
		Location:        r.Location,
		ExperienceLevel: r.ExperienceLevel,
		Education:       r.Education,
		Interests:       r.Interests,
	}
	if r.Skills != nil {
		s := skillset.New(*r.Skills...)
		out.Skills = &s
	}
	return out
}

type UpdateSkillsRequest struct {
	Skills []string `json:"skills" validate:"required"`
}

func (r *UpdateSkillsRequest) Validate() error {
	return validate.Struct(r)
}

type SkillsResponse struct {
	Skills skillset.Set `json:"skills"`
}

type StatsResponse struct {
	Role              string                     `json:"role"`
	TotalApplications int                        `json:"totalApplications"`
	StatusBreakdown   map[application.Status]int `json:"statusBreakdown,omitempty"`
	TotalJobs         *int                       `json:"totalJobs,omitempty"`
}

func NewStatsResponse(s usecase.UserStats) StatsResponse {
	return StatsResponse{
		Role:              string(s.Role),
		TotalApplications: s.TotalApplications,
		StatusBreakdown:   s.StatusBreakdown,
		TotalJobs:         s.TotalJobs,
	}
}

type SearchPeopleRequest struct {
	Skills []string `json:"skills" validate:"required"`
	Limit  int      `json:"limit" validate:"gte=0"`
}

func (r *SearchPeopleRequest) Validate() error {
	return validate.Struct(r)
}

// PersonMatchResponse flattens the candidate's profile next to the match fields.
type PersonMatchResponse struct {
	UserResponse
	MatchPercentage int          `json:"matchPercentage"`
	MatchingSkills  skillset.Set `json:"matchingSkills"`
	SkillGap        skillset.Set `json:"skillGap"`
}

func NewPersonMatches(res []usecase.PersonMatch) []PersonMatchResponse {
	out := make([]PersonMatchResponse, 0, len(res))
	for _, r := range res {
		out = append(out, PersonMatchResponse{
			UserResponse:    NewUserResponse(r.Candidate.Item),
			MatchPercentage: r.MatchPercentage,
			MatchingSkills:  r.MatchingSkills,
			SkillGap:        r.SkillGap,
		})
	}
	return out
}
