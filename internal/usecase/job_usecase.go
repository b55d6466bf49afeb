package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// JobEvents receives notifications about job lifecycle changes.
type JobEvents interface {
	JobPosted(id uuid.UUID, title, jobType, location string, skills []string)
}

type JobListParams struct {
	Search     string
	JobType    string
	Location   string
	Experience string
	MinSalary  *int
	MaxSalary  *int
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

type JobPage struct {
	Jobs  []job.Job
	Page  int
	Limit int
	Total int
}

type JobDetail struct {
	Job           job.Job
	MyApplication *application.Application
}

type CreateJobInput struct {
	Title          string
	Description    string
	JobType        string
	Location       *string
	SalaryMin      *int
	SalaryMax      *int
	ExperienceReq  *string
	Deadline       *time.Time
	RequiredSkills []string
}

type JobUsecase struct {
	jobs   repository.JobRepository
	apps   repository.ApplicationRepository
	cache  SearchCache
	events JobEvents
	logger *zap.Logger
	now    func() time.Time
}

func NewJobUsecase(jobs repository.JobRepository, apps repository.ApplicationRepository, cache SearchCache, events JobEvents, logger *zap.Logger) *JobUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobUsecase{
		jobs:   jobs,
		apps:   apps,
		cache:  cacheOrNoop(cache),
		events: events,
		logger: logger.Named("jobs"),
		now:    time.Now,
	}
}

func (u *JobUsecase) List(ctx context.Context, p JobListParams) (JobPage, error) {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		return JobPage{}, invalid("limit must be at most 100")
	}
	if p.JobType != "" && !job.Type(p.JobType).Valid() {
		return JobPage{}, invalid("invalid job type")
	}
	if p.MinSalary != nil && p.MaxSalary != nil && *p.MinSalary > *p.MaxSalary {
		return JobPage{}, invalid("min_salary cannot exceed max_salary")
	}

	jobs, total, err := u.jobs.List(ctx, repository.JobFilter{
		Search:     p.Search,
		JobType:    p.JobType,
		Location:   p.Location,
		Experience: p.Experience,
		MinSalary:  p.MinSalary,
		MaxSalary:  p.MaxSalary,
		SortBy:     p.SortBy,
		SortOrder:  p.SortOrder,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	})
	if err != nil {
		u.logger.Error("list jobs", zap.Error(err))
		return JobPage{}, ErrInternal
	}
	return JobPage{Jobs: jobs, Page: page, Limit: limit, Total: total}, nil
}

// Get returns an active job, or an inactive one to its owner, and counts the view.
func (u *JobUsecase) Get(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (JobDetail, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobDetail{}, ErrNotFound
		}
		u.logger.Error("get job", zap.String("job_id", id.String()), zap.Error(err))
		return JobDetail{}, ErrInternal
	}
	if !j.IsActive && (viewer == nil || *viewer != j.EmployerID) {
		return JobDetail{}, ErrNotFound
	}

	if err := u.jobs.IncrementViews(ctx, id); err != nil {
		u.logger.Warn("increment views", zap.String("job_id", id.String()), zap.Error(err))
	} else {
		j.Views++
	}

	detail := JobDetail{Job: j}
	if viewer != nil {
		a, err := u.apps.FindByJobAndUser(ctx, id, *viewer)
		switch {
		case err == nil:
			detail.MyApplication = &a
		case errors.Is(err, repository.ErrApplicationNotFound):
		default:
			u.logger.Warn("find application", zap.String("job_id", id.String()), zap.Error(err))
		}
	}
	return detail, nil
}

func (u *JobUsecase) Create(ctx context.Context, employerID uuid.UUID, in CreateJobInput) (job.Job, error) {
	skills, err := validateJobInput(in)
	if err != nil {
		return job.Job{}, err
	}

	now := u.now().UTC()
	j := job.Job{
		ID:             uuid.New(),
		EmployerID:     employerID,
		Title:          strings.TrimSpace(in.Title),
		Description:    strings.TrimSpace(in.Description),
		JobType:        job.Type(in.JobType),
		Location:       trimmedOrNil(in.Location),
		SalaryMin:      in.SalaryMin,
		SalaryMax:      in.SalaryMax,
		ExperienceReq:  trimmedOrNil(in.ExperienceReq),
		Deadline:       in.Deadline,
		RequiredSkills: skills,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		if errors.Is(err, repository.ErrReferenceMissing) {
			return job.Job{}, ErrNotFound
		}
		u.logger.Error("create job", zap.Error(err))
		return job.Job{}, ErrInternal
	}

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		u.logger.Warn("reload created job", zap.String("job_id", j.ID.String()), zap.Error(err))
		created = j
	}

	u.invalidate(ctx)
	if u.events != nil {
		loc := ""
		if created.Location != nil {
			loc = *created.Location
		}
		u.events.JobPosted(created.ID, created.Title, string(created.JobType), loc, created.RequiredSkills.Names())
	}

	u.logger.Info("job created",
		zap.String("job_id", created.ID.String()),
		zap.String("employer_id", employerID.String()),
		zap.Int("skills", created.RequiredSkills.Len()),
	)
	return created, nil
}

func (u *JobUsecase) Update(ctx context.Context, employerID, id uuid.UUID, in job.Update) (job.Job, error) {
	current, err := u.owned(ctx, employerID, id)
	if err != nil {
		return job.Job{}, err
	}
	if err := validateJobUpdate(in); err != nil {
		return job.Job{}, err
	}
	// a single bound is checked against the stored other bound
	if err := validateSalary(firstSet(in.SalaryMin, current.SalaryMin), firstSet(in.SalaryMax, current.SalaryMax)); err != nil {
		return job.Job{}, err
	}
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		in.Title = &t
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		in.Description = &d
	}

	if err := u.jobs.Update(ctx, id, in); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		u.logger.Error("update job", zap.String("job_id", id.String()), zap.Error(err))
		return job.Job{}, ErrInternal
	}
	u.invalidate(ctx)

	updated, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, ErrInternal
	}
	return updated, nil
}

// Delete deactivates the job; applications are kept.
func (u *JobUsecase) Delete(ctx context.Context, employerID, id uuid.UUID) error {
	if _, err := u.owned(ctx, employerID, id); err != nil {
		return err
	}
	if err := u.jobs.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ErrNotFound
		}
		u.logger.Error("deactivate job", zap.String("job_id", id.String()), zap.Error(err))
		return ErrInternal
	}
	u.invalidate(ctx)
	return nil
}

func (u *JobUsecase) ListMine(ctx context.Context, employerID uuid.UUID, status string) ([]job.Job, error) {
	st := repository.JobStatus(strings.ToLower(strings.TrimSpace(status)))
	if st == "" {
		st = repository.JobStatusAll
	}
	switch st {
	case repository.JobStatusActive, repository.JobStatusInactive, repository.JobStatusAll:
	default:
		return nil, invalid("status must be active, inactive or all")
	}

	jobs, err := u.jobs.ListByEmployer(ctx, employerID, st)
	if err != nil {
		u.logger.Error("list employer jobs", zap.Error(err))
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *JobUsecase) owned(ctx context.Context, employerID, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	if j.EmployerID != employerID {
		return job.Job{}, ErrForbidden
	}
	return j, nil
}

func (u *JobUsecase) invalidate(ctx context.Context) {
	if err := u.cache.Invalidate(ctx, cachePrefixJobs); err != nil {
		u.logger.Warn("invalidate job cache", zap.Error(err))
	}
}

func validateJobInput(in CreateJobInput) (skillset.Set, error) {
	if utf8.RuneCountInString(strings.TrimSpace(in.Title)) < 3 {
		return skillset.Set{}, invalid("title must be at least 3 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Description)) < 10 {
		return skillset.Set{}, invalid("description must be at least 10 characters")
	}
	if !job.Type(in.JobType).Valid() {
		return skillset.Set{}, invalid("invalid job type")
	}
	if err := validateSalary(in.SalaryMin, in.SalaryMax); err != nil {
		return skillset.Set{}, err
	}

	skills := skillset.New(in.RequiredSkills...)
	if skills.IsEmpty() {
		return skillset.Set{}, invalid("at least one skill is required")
	}
	if skills.HasBlank() {
		return skillset.Set{}, invalid("skill names cannot be empty")
	}
	return skills, nil
}

func validateJobUpdate(in job.Update) error {
	if in.IsEmpty() {
		return invalid("no fields to update")
	}
	if in.Title != nil && utf8.RuneCountInString(strings.TrimSpace(*in.Title)) < 3 {
		return invalid("title must be at least 3 characters")
	}
	if in.Description != nil && utf8.RuneCountInString(strings.TrimSpace(*in.Description)) < 10 {
		return invalid("description must be at least 10 characters")
	}
	if in.JobType != nil && !in.JobType.Valid() {
		return invalid("invalid job type")
	}
	if in.RequiredSkills != nil {
		if in.RequiredSkills.IsEmpty() {
			return invalid("at least one skill is required")
		}
		if in.RequiredSkills.HasBlank() {
			return invalid("skill names cannot be empty")
		}
	}
	return validateSalary(in.SalaryMin, in.SalaryMax)
}

func firstSet(v, fallback *int) *int {
	if v != nil {
		return v
	}
	return fallback
}

func validateSalary(minSalary, maxSalary *int) error {
	if minSalary != nil && *minSalary < 0 {
		return invalid("salary cannot be negative")
	}
	if maxSalary != nil && *maxSalary < 0 {
		return invalid("salary cannot be negative")
	}
	if minSalary != nil && maxSalary != nil && *minSalary > *maxSalary {
		return invalid("salaryMin cannot exceed salaryMax")
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
