package usecase

import (
	"context"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/config"
	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/matching"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentWindow = 7 * 24 * time.Hour

type Categories struct {
	JobTypes         []repository.TypeCount     `json:"jobTypes"`
	PopularLocations []repository.LocationCount `json:"popularLocations"`
	PopularSkills    []matching.Frequency       `json:"popularSkills"`
}

type Dashboard struct {
	TotalJobs            int
	ActiveJobs           int
	TotalViews           int
	TotalApplications    int
	RecentApplications   int
	ApplicationsByStatus map[application.Status]int
	JobsByType           map[job.Type]int
	TopSkills            []matching.Frequency
}

// InsightsUsecase builds aggregate views over jobs and applicants.
type InsightsUsecase struct {
	jobs   repository.JobRepository
	apps   repository.ApplicationRepository
	cache  SearchCache
	cfg    config.MatchingConfig
	logger *zap.Logger
	now    func() time.Time
}

func NewInsightsUsecase(jobs repository.JobRepository, apps repository.ApplicationRepository, cache SearchCache, cfg config.MatchingConfig, log *zap.Logger) *InsightsUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &InsightsUsecase{
		jobs:   jobs,
		apps:   apps,
		cache:  cacheOrNoop(cache),
		cfg:    cfg,
		logger: log.Named("insights"),
		now:    time.Now,
	}
}

func (u *InsightsUsecase) Categories(ctx context.Context) (Categories, error) {
	var out Categories
	if hit, err := u.cache.GetJSON(ctx, cacheKeyCategories, &out); err == nil && hit {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		types, err := u.jobs.CountActiveByType(gctx)
		out.JobTypes = types
		return err
	})
	g.Go(func() error {
		locs, err := u.jobs.PopularLocations(gctx, u.cfg.PopularLocations)
		out.PopularLocations = locs
		return err
	})
	g.Go(func() error {
		pool, err := u.jobs.ListActivePool(gctx, u.cfg.CategoryPoolLimit)
		if err != nil {
			return err
		}
		sets := make([]skillset.Set, 0, len(pool))
		for _, j := range pool {
			sets = append(sets, j.RequiredSkills)
		}
		out.PopularSkills = matching.Aggregate(sets, u.cfg.PopularSkills)
		return nil
	})
	if err := g.Wait(); err != nil {
		u.logger.Error("categories", zap.Error(err))
		return Categories{}, ErrInternal
	}

	if err := u.cache.SetJSON(ctx, cacheKeyCategories, out, 0); err != nil {
		u.logger.Warn("cache categories", zap.Error(err))
	}
	return out, nil
}

func (u *InsightsUsecase) EmployerDashboard(ctx context.Context, employerID uuid.UUID) (Dashboard, error) {
	var (
		stats    repository.EmployerJobStats
		byStatus map[application.Status]int
		recent   int
		topSkill []matching.Frequency
	)
	since := u.now().UTC().Add(-recentWindow)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = u.jobs.EmployerStats(gctx, employerID)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = u.apps.CountByStatusForEmployer(gctx, employerID)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = u.apps.CountRecentForEmployer(gctx, employerID, since)
		return err
	})
	g.Go(func() error {
		sets, err := u.apps.ListApplicantSkills(gctx, employerID, u.cfg.PoolLimit)
		if err != nil {
			return err
		}
		topSkill = matching.Aggregate(sets, u.cfg.TopApplicantSkills)
		return nil
	})
	if err := g.Wait(); err != nil {
		u.logger.Error("employer dashboard", zap.String("employer_id", employerID.String()), zap.Error(err))
		return Dashboard{}, ErrInternal
	}

	return Dashboard{
		TotalJobs:            stats.TotalJobs,
		ActiveJobs:           stats.ActiveJobs,
		TotalViews:           stats.TotalViews,
		TotalApplications:    sum(byStatus),
		RecentApplications:   recent,
		ApplicationsByStatus: byStatus,
		JobsByType:           stats.JobsByType,
		TopSkills:            topSkill,
	}, nil
}
