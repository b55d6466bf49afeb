package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/config"
	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/matching"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"
	"github.com/Barshamagar123/skill-matcher/internal/logger"
	"github.com/Barshamagar123/skill-matcher/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultPeopleLimit = 10

type (
	JobMatch    = matching.Result[job.Job]
	PersonMatch = matching.Result[user.User]
)

// MatchingUsecase ranks jobs against a seeker's skills and people against an
// employer's skill query.
type MatchingUsecase struct {
	jobs   repository.JobRepository
	users  user.Repository
	apps   repository.ApplicationRepository
	cache  SearchCache
	cfg    config.MatchingConfig
	logger *zap.Logger
	now    func() time.Time
}

func NewMatchingUsecase(
	jobs repository.JobRepository,
	users user.Repository,
	apps repository.ApplicationRepository,
	cache SearchCache,
	cfg config.MatchingConfig,
	log *zap.Logger,
) *MatchingUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &MatchingUsecase{
		jobs:   jobs,
		users:  users,
		apps:   apps,
		cache:  cacheOrNoop(cache),
		cfg:    cfg,
		logger: log.Named("matching"),
		now:    time.Now,
	}
}

func (u *MatchingUsecase) SearchJobs(ctx context.Context, skills []string) ([]JobMatch, error) {
	query, err := queryFrom(skills)
	if err != nil {
		return nil, err
	}

	key := JobsMatchCacheKey(query, u.cfg.PoolLimit)
	var cached []JobMatch
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	res, err := u.matchJobs(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := u.cache.SetJSON(ctx, key, res, 0); err != nil {
		u.logger.Warn("cache skill search", zap.Error(err))
	}
	u.logger.Debug("skill search",
		logger.Skills("skills", query.Names()),
		zap.Int("matches", len(res)),
	)
	return res, nil
}

// Recommended matches active jobs against the user's stored skills. A user
// without skills gets an empty list.
func (u *MatchingUsecase) Recommended(ctx context.Context, userID uuid.UUID) ([]JobMatch, error) {
	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, ErrInternal
	}
	if usr.Skills.IsEmpty() || usr.Skills.HasBlank() {
		return []JobMatch{}, nil
	}

	res, err := u.matchJobs(ctx, usr.Skills)
	if err != nil {
		return nil, err
	}
	return truncate(res, u.cfg.RecommendedLimit), nil
}

func (u *MatchingUsecase) SearchPeople(ctx context.Context, skills []string, limit int) ([]PersonMatch, error) {
	query, err := queryFrom(skills)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultPeopleLimit
	}
	if limit > u.cfg.PoolLimit {
		limit = u.cfg.PoolLimit
	}

	people, err := u.users.ListSkilledYouth(ctx, u.cfg.PoolLimit)
	if err != nil {
		u.logger.Error("list youth pool", zap.Error(err))
		return nil, ErrInternal
	}

	pool := make([]matching.Candidate[user.User], 0, len(people))
	for _, p := range people {
		pool = append(pool, matching.Candidate[user.User]{ID: p.ID, Skills: p.Skills, Item: publicProfile(p)})
	}

	res, err := matching.Match(query, pool)
	if err != nil {
		return nil, mapMatchErr(err)
	}
	return truncate(res, limit), nil
}

// Apply records an application to an active job along with the applicant's
// match percentage for it.
func (u *MatchingUsecase) Apply(ctx context.Context, jobID, userID uuid.UUID) (application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}
	if !j.IsActive {
		return application.Application{}, invalid("job is no longer accepting applications")
	}
	if j.Deadline != nil && u.now().After(*j.Deadline) {
		return application.Application{}, invalid("application deadline has passed")
	}

	usr, err := u.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	score := matching.Score(usr.Skills, matching.Candidate[job.Job]{ID: j.ID, Skills: j.RequiredSkills})
	a := application.Application{
		ID:              uuid.New(),
		JobID:           j.ID,
		UserID:          usr.ID,
		Status:          application.StatusPending,
		MatchPercentage: score.MatchPercentage,
		AppliedAt:       u.now().UTC(),
	}

	if err := u.apps.Create(ctx, a); err != nil {
		switch {
		case errors.Is(err, repository.ErrApplicationExists):
			return application.Application{}, ErrConflict
		case errors.Is(err, repository.ErrReferenceMissing):
			return application.Application{}, ErrNotFound
		}
		u.logger.Error("create application", zap.Error(err))
		return application.Application{}, ErrInternal
	}

	// cached skill searches carry application counts
	if err := u.cache.Invalidate(ctx, cachePrefixSkillMatch); err != nil {
		u.logger.Warn("invalidate skill match cache", zap.Error(err))
	}

	u.logger.Info("application created",
		zap.String("job_id", j.ID.String()),
		zap.String("user_id", usr.ID.String()),
		zap.Int("match", a.MatchPercentage),
	)
	return a, nil
}

func (u *MatchingUsecase) matchJobs(ctx context.Context, query skillset.Set) ([]JobMatch, error) {
	jobs, err := u.jobs.ListActivePool(ctx, u.cfg.PoolLimit)
	if err != nil {
		u.logger.Error("list job pool", zap.Error(err))
		return nil, ErrInternal
	}

	pool := make([]matching.Candidate[job.Job], 0, len(jobs))
	for _, j := range jobs {
		pool = append(pool, matching.Candidate[job.Job]{ID: j.ID, Skills: j.RequiredSkills, Item: j})
	}

	res, err := matching.Match(query, pool)
	if err != nil {
		return nil, mapMatchErr(err)
	}
	return res, nil
}

func queryFrom(skills []string) (skillset.Set, error) {
	if len(skills) == 0 {
		return skillset.Set{}, invalid("skills array is required")
	}
	q := skillset.New(skills...)
	if q.HasBlank() {
		return skillset.Set{}, invalid("skill names cannot be empty")
	}
	return q, nil
}

func mapMatchErr(err error) error {
	if errors.Is(err, matching.ErrInvalidArgument) {
		return invalid("skills array is required")
	}
	return ErrInternal
}

func truncate[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}
	return s
}

func publicProfile(u user.User) user.User {
	u.PasswordHash = ""
	u.Phone = nil
	u.LastLogin = nil
	return u
}
