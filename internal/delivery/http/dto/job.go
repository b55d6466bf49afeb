package dto

import (
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/matching"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/pkg/response"
	"github.com/Barshamagar123/skill-matcher/internal/usecase"

	"github.com/google/uuid"
)

type EmployerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  *string   `json:"name"`
	Email string    `json:"email"`
}

type JobResponse struct {
	ID               uuid.UUID         `json:"id"`
	EmployerID       uuid.UUID         `json:"employerId"`
	Employer         *EmployerResponse `json:"employer,omitempty"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	JobType          string            `json:"jobType"`
	Location         *string           `json:"location"`
	SalaryMin        *int              `json:"salaryMin"`
	SalaryMax        *int              `json:"salaryMax"`
	ExperienceReq    *string           `json:"experienceReq"`
	Deadline         *time.Time        `json:"deadline"`
	RequiredSkills   skillset.Set      `json:"requiredSkills"`
	IsActive         bool              `json:"isActive"`
	Views            int               `json:"views"`
	ApplicationCount int               `json:"applicationCount"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func NewJobResponse(j job.Job) JobResponse {
	out := JobResponse{
		ID:               j.ID,
		EmployerID:       j.EmployerID,
		Title:            j.Title,
		Description:      j.Description,
		JobType:          string(j.JobType),
		Location:         j.Location,
		SalaryMin:        j.SalaryMin,
		SalaryMax:        j.SalaryMax,
		ExperienceReq:    j.ExperienceReq,
		Deadline:         j.Deadline,
		RequiredSkills:   j.RequiredSkills,
		IsActive:         j.IsActive,
		Views:            j.Views,
		ApplicationCount: j.ApplicationCount,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
	if j.Employer != nil {
		out.Employer = &EmployerResponse{ID: j.Employer.ID, Name: j.Employer.Name, Email: j.Employer.Email}
	}
	return out
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}

type JobListResponse struct {
	Jobs       []JobResponse       `json:"jobs"`
	Pagination response.Pagination `json:"pagination"`
}

func NewJobListResponse(p usecase.JobPage) JobListResponse {
	return JobListResponse{
		Jobs:       NewJobResponses(p.Jobs),
		Pagination: response.NewPagination(p.Page, p.Limit, p.Total),
	}
}

type JobDetailResponse struct {
	JobResponse
	MyApplication *ApplicationResponse `json:"myApplication,omitempty"`
}

func NewJobDetailResponse(d usecase.JobDetail) JobDetailResponse {
	out := JobDetailResponse{JobResponse: NewJobResponse(d.Job)}
	if d.MyApplication != nil {
		a := NewApplicationResponse(*d.MyApplication)
		out.MyApplication = &a
	}
	return out
}

type CreateJobRequest struct {
	Title          string     `json:"title" validate:"required,min=3,max=200"`
	Description    string     `json:"description" validate:"required,min=10"`
	JobType        string     `json:"jobType" validate:"required,oneof=FULL_TIME PART_TIME INTERNSHIP CONTRACT FREELANCE REMOTE"`
	Location       *string    `json:"location" validate:"omitempty,max=100"`
	SalaryMin      *int       `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax      *int       `json:"salaryMax" validate:"omitempty,gte=0"`
	ExperienceReq  *string    `json:"experienceReq" validate:"omitempty,max=100"`
	Deadline       *time.Time `json:"deadline"`
	RequiredSkills []string   `json:"requiredSkills" validate:"required,min=1"`
}

func (r *CreateJobRequest) Validate() error {
	return validate.Struct(r)
}

func (r CreateJobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		Title:          r.Title,
		Description:    r.Description,
		JobType:        r.JobType,
		Location:       r.Location,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		ExperienceReq:  r.ExperienceReq,
		Deadline:       r.Deadline,
		RequiredSkills: r.RequiredSkills,
	}
}

type UpdateJobRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=3,max=200"`
	Description    *string    `json:"description" validate:"omitempty,min=10"`
	JobType        *string    `json:"jobType" validate:"omitempty,oneof=FULL_TIME PART_TIME INTERNSHIP CONTRACT FREELANCE REMOTE"`
	Location       *string    `json:"location" validate:"omitempty,max=100"`
	SalaryMin      *int       `json:"salaryMin" validate:"omitempty,gte=0"`
	SalaryMax      *int       `json:"salaryMax" validate:"omitempty,gte=0"`
	ExperienceReq  *string    `json:"experienceReq" validate:"omitempty,max=100"`
	Deadline       *time.Time `json:"deadline"`
	RequiredSkills *[]string  `json:"requiredSkills" validate:"omitempty,min=1"`
	IsActive       *bool      `json:"isActive"`
}

func (r *UpdateJobRequest) Validate() error {
	return validate.Struct(r)
}

func (r UpdateJobRequest) ToDomain() job.Update {
	out := job.Update{
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		SalaryMin:     r.SalaryMin,
		SalaryMax:     r.SalaryMax,
		ExperienceReq: r.ExperienceReq,
		Deadline:      r.Deadline,
		IsActive:      r.IsActive,
	}
	if r.JobType != nil {
		t := job.Type(*r.JobType)
		out.JobType = &t
	}
	if r.RequiredSkills != nil {
		s := skillset.New(*r.RequiredSkills...)
		out.RequiredSkills = &s
	}
	return out
}

type SkillSearchRequest struct {
	Skills []string `json:"skills" validate:"required"`
}

func (r *SkillSearchRequest) Validate() error {
	return validate.Struct(r)
}

type JobMatchResponse struct {
	JobResponse
	MatchPercentage int          `json:"matchPercentage"`
	MatchingSkills  skillset.Set `json:"matchingSkills"`
	SkillGap        skillset.Set `json:"skillGap"`
}

func NewJobMatches(res []usecase.JobMatch) []JobMatchResponse {
	out := make([]JobMatchResponse, 0, len(res))
	for _, r := range res {
		out = append(out, JobMatchResponse{
			JobResponse:     NewJobResponse(r.Candidate.Item),
			MatchPercentage: r.MatchPercentage,
			MatchingSkills:  r.MatchingSkills,
			SkillGap:        r.SkillGap,
		})
	}
	return out
}

type ApplicationResponse struct {
	ID              uuid.UUID `json:"id"`
	JobID           uuid.UUID `json:"jobId"`
	UserID          uuid.UUID `json:"userId"`
	Status          string    `json:"status"`
	MatchPercentage int       `json:"matchPercentage"`
	AppliedAt       time.Time `json:"appliedAt"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		JobID:           a.JobID,
		UserID:          a.UserID,
		Status:          string(a.Status),
		MatchPercentage: a.MatchPercentage,
		AppliedAt:       a.AppliedAt,
	}
}

type TypeCountResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type LocationCountResponse struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type CategoriesResponse struct {
	JobTypes         []TypeCountResponse     `json:"jobTypes"`
	PopularLocations []LocationCountResponse `json:"popularLocations"`
	PopularSkills    []matching.Frequency    `json:"popularSkills"`
}

func NewCategoriesResponse(c usecase.Categories) CategoriesResponse {
	out := CategoriesResponse{
		JobTypes:         make([]TypeCountResponse, 0, len(c.JobTypes)),
		PopularLocations: make([]LocationCountResponse, 0, len(c.PopularLocations)),
		PopularSkills:    c.PopularSkills,
	}
	for _, t := range c.JobTypes {
		out.JobTypes = append(out.JobTypes, TypeCountResponse{Type: string(t.Type), Count: t.Count})
	}
	for _, l := range c.PopularLocations {
		out.PopularLocations = append(out.PopularLocations, LocationCountResponse{Location: l.Location, Count: l.Count})
	}
	if out.PopularSkills == nil {
		out.PopularSkills = []matching.Frequency{}
	}
	return out
}

type DashboardResponse struct {
	TotalJobs            int                        `json:"totalJobs"`
	ActiveJobs           int                        `json:"activeJobs"`
	TotalViews           int                        `json:"totalViews"`
	TotalApplications    int                        `json:"totalApplications"`
	RecentApplications   int                        `json:"recentApplications"`
	ApplicationsByStatus map[application.Status]int `json:"applicationsByStatus"`
	JobsByType           map[job.Type]int           `json:"jobsByType"`
	TopSkills            []matching.Frequency       `json:"topSkills"`
}

func NewDashboardResponse(d usecase.Dashboard) DashboardResponse {
	out := DashboardResponse{
		TotalJobs:            d.TotalJobs,
		ActiveJobs:           d.ActiveJobs,
		TotalViews:           d.TotalViews,
		TotalApplications:    d.TotalApplications,
		RecentApplications:   d.RecentApplications,
		ApplicationsByStatus: d.ApplicationsByStatus,
		JobsByType:           d.JobsByType,
		TopSkills:            d.TopSkills,
	}
	if out.ApplicationsByStatus == nil {
		out.ApplicationsByStatus = map[application.Status]int{}
	}
	if out.JobsByType == nil {
		out.JobsByType = map[job.Type]int{}
	}
	if out.TopSkills == nil {
		out.TopSkills = []matching.Frequency{}
	}
	return out
}
