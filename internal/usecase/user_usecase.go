package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"
	"github.com/Barshamagar123/skill-matcher/internal/repository"
	ucauth "github.com/Barshamagar123/skill-matcher/internal/usecase/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type UserStats struct {
	Role              user.Role
	TotalApplications int
	StatusBreakdown   map[application.Status]int
	TotalJobs         *int
}

type UserUsecase struct {
	users  user.Repository
	jobs   repository.JobRepository
	apps   repository.ApplicationRepository
	logger *zap.Logger
}

func NewUserUsecase(users user.Repository, jobs repository.JobRepository, apps repository.ApplicationRepository, log *zap.Logger) *UserUsecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserUsecase{users: users, jobs: jobs, apps: apps, logger: log.Named("users")}
}

func (u *UserUsecase) GetProfile(ctx context.Context, id uuid.UUID) (user.User, error) {
	usr, err := u.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		u.logger.Error("get user", zap.String("user_id", id.String()), zap.Error(err))
		return user.User{}, ErrInternal
	}
	return ucauth.Sanitize(usr), nil
}

func (u *UserUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, in user.ProfileUpdate) (user.User, error) {
	if in.IsEmpty() {
		return user.User{}, invalid("no fields to update")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return user.User{}, invalid("name cannot be empty")
	}
	if in.Skills != nil && in.Skills.HasBlank() {
		return user.User{}, invalid("skill names cannot be empty")
	}

	if err := u.users.UpdateProfile(ctx, id, in); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		u.logger.Error("update profile", zap.String("user_id", id.String()), zap.Error(err))
		return user.User{}, ErrInternal
	}
	return u.GetProfile(ctx, id)
}

func (u *UserUsecase) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := u.users.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		u.logger.Error("delete user", zap.String("user_id", id.String()), zap.Error(err))
		return ErrInternal
	}
	u.logger.Info("account deleted", zap.String("user_id", id.String()))
	return nil
}

func (u *UserUsecase) GetSkills(ctx context.Context, id uuid.UUID) (skillset.Set, error) {
	usr, err := u.GetProfile(ctx, id)
	if err != nil {
		return skillset.Set{}, err
	}
	return usr.Skills, nil
}

// UpdateSkills replaces the user's skills; a non-empty list marks the profile complete.
func (u *UserUsecase) UpdateSkills(ctx context.Context, id uuid.UUID, skills []string) (skillset.Set, error) {
	if skills == nil {
		return skillset.Set{}, invalid("skills array is required")
	}
	s := skillset.New(skills...)
	if s.HasBlank() {
		return skillset.Set{}, invalid("skill names cannot be empty")
	}

	if err := u.users.UpdateSkills(ctx, id, s); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return skillset.Set{}, ErrNotFound
		}
		u.logger.Error("update skills", zap.String("user_id", id.String()), zap.Error(err))
		return skillset.Set{}, ErrInternal
	}
	return s, nil
}

func (u *UserUsecase) Stats(ctx context.Context, id uuid.UUID) (UserStats, error) {
	usr, err := u.GetProfile(ctx, id)
	if err != nil {
		return UserStats{}, err
	}

	out := UserStats{Role: usr.Role}
	switch usr.Role {
	case user.RoleYouth:
		byStatus, err := u.apps.CountByStatusForUser(ctx, id)
		if err != nil {
			u.logger.Error("user stats", zap.Error(err))
			return UserStats{}, ErrInternal
		}
		out.StatusBreakdown = byStatus
		out.TotalApplications = sum(byStatus)

	case user.RoleEmployer:
		var (
			jobStats repository.EmployerJobStats
			byStatus map[application.Status]int
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			jobStats, err = u.jobs.EmployerStats(gctx, id)
			return err
		})
		g.Go(func() error {
			var err error
			byStatus, err = u.apps.CountByStatusForEmployer(gctx, id)
			return err
		})
		if err := g.Wait(); err != nil {
			u.logger.Error("employer stats", zap.Error(err))
			return UserStats{}, ErrInternal
		}
		total := jobStats.TotalJobs
		out.TotalJobs = &total
		out.TotalApplications = sum(byStatus)
	}
	return out, nil
}

func sum[K comparable](m map[K]int) int {
	n := 0
	for _, v := range m {
		n += v
	}
	return n
}
