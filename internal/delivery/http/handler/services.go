package handler

import (
	"context"

	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"
	"github.com/Barshamagar123/skill-matcher/internal/usecase"

	"github.com/google/uuid"
)

type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, in user.ProfileUpdate) (user.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	GetSkills(ctx context.Context, id uuid.UUID) (skillset.Set, error)
	UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (skillset.Set, error)
	Stats(ctx context.Context, id uuid.UUID) (usecase.UserStats, error)
}

type JobService interface {
	List(ctx context.Context, p usecase.JobListParams) (usecase.JobPage, error)
	Get(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (usecase.JobDetail, error)
	Create(ctx context.Context, employerID uuid.UUID, in usecase.CreateJobInput) (job.Job, error)
	Update(ctx context.Context, employerID, id uuid.UUID, in job.Update) (job.Job, error)
	Delete(ctx context.Context, employerID, id uuid.UUID) error
	ListMine(ctx context.Context, employerID uuid.UUID, status string) ([]job.Job, error)
}

type MatchingService interface {
	SearchJobs(ctx context.Context, skills []string) ([]usecase.JobMatch, error)
	Recommended(ctx context.Context, userID uuid.UUID) ([]usecase.JobMatch, error)
	SearchPeople(ctx context.Context, skills []string, limit int) ([]usecase.PersonMatch, error)
	Apply(ctx context.Context, jobID, userID uuid.UUID) (application.Application, error)
}

type InsightsService interface {
	Categories(ctx context.Context) (usecase.Categories, error)
	EmployerDashboard(ctx context.Context, employerID uuid.UUID) (usecase.Dashboard, error)
}

var (
	_ UserService     = (*usecase.UserUsecase)(nil)
	_ JobService      = (*usecase.JobUsecase)(nil)
	_ MatchingService = (*usecase.MatchingUsecase)(nil)
	_ InsightsService = (*usecase.InsightsUsecase)(nil)
)
