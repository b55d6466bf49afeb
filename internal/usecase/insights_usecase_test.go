package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/matching"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsUsecase_Categories(t *testing.T) {
	employer := uuid.New()
	a := newJob(employer, "a", "go", "sql")
	a.Location = ptr("Pokhara")
	b := newJob(employer, "b", "go")
	b.Location = ptr("Kathmandu")
	b.JobType = job.TypeInternship
	c := newJob(employer, "c", "sql", "aws")
	c.Location = ptr("Kathmandu")

	jobs := &fakeJobs{items: []job.Job{a, b, c}}
	cache := newFakeCache()
	uc := NewInsightsUsecase(jobs, &fakeApps{jobs: jobs, users: &fakeUsers{}}, cache, testMatchingConfig(), nil)
	ctx := context.Background()

	got, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []matching.Frequency{{Skill: "go", Count: 2}, {Skill: "sql", Count: 2}, {Skill: "aws", Count: 1}}, got.PopularSkills)
	require.Len(t, got.PopularLocations, 2)
	assert.Equal(t, "Kathmandu", got.PopularLocations[0].Location)
	assert.Equal(t, 2, got.PopularLocations[0].Count)
	assert.Len(t, got.JobTypes, 2)
	assert.Contains(t, cache.data, cacheKeyCategories)

	jobs.items = nil
	again, err := uc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, got.PopularSkills, again.PopularSkills)

	require.NoError(t, cache.Invalidate(ctx, cachePrefixJobs))
	jobs.err = errDB
	_, err = uc.Categories(ctx)
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestInsightsUsecase_EmployerDashboard(t *testing.T) {
	employer := uuid.New()
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	j1 := newJob(employer, "j1", "go")
	j1.Views = 5
	j2 := newJob(employer, "j2", "sql")
	j2.IsActive = false
	j2.Views = 3
	foreign := newJob(uuid.New(), "foreign", "go")

	jobs := &fakeJobs{items: []job.Job{j1, j2, foreign}}
	users := &fakeUsers{}
	u1 := newUser(user.RoleYouth, "go", "docker")
	u2 := newUser(user.RoleYouth, "go")
	u3 := newUser(user.RoleYouth, "rust")
	users.items = []user.User{u1, u2, u3}
	apps := &fakeApps{jobs: jobs, users: users, items: []application.Application{
		{ID: uuid.New(), JobID: j1.ID, UserID: u1.ID, Status: application.StatusPending, AppliedAt: now.Add(-time.Hour)},
		{ID: uuid.New(), JobID: j1.ID, UserID: u2.ID, Status: application.StatusAccepted, AppliedAt: now.Add(-30 * 24 * time.Hour)},
		{ID: uuid.New(), JobID: j2.ID, UserID: u1.ID, Status: application.StatusPending, AppliedAt: now.Add(-2 * 24 * time.Hour)},
		{ID: uuid.New(), JobID: foreign.ID, UserID: u3.ID, Status: application.StatusPending, AppliedAt: now},
	}}

	uc := NewInsightsUsecase(jobs, apps, nil, testMatchingConfig(), nil)
	uc.now = func() time.Time { return now }

	d, err := uc.EmployerDashboard(context.Background(), employer)
	require.NoError(t, err)
	assert.Equal(t, 2, d.TotalJobs)
	assert.Equal(t, 1, d.ActiveJobs)
	assert.Equal(t, 8, d.TotalViews)
	assert.Equal(t, 3, d.TotalApplications)
	assert.Equal(t, 2, d.RecentApplications)
	assert.Equal(t, 2, d.ApplicationsByStatus[application.StatusPending])
	assert.Equal(t, 1, d.ApplicationsByStatus[application.StatusAccepted])
	assert.Equal(t, 2, d.JobsByType[job.TypeFullTime])
	require.Len(t, d.TopSkills, 2)
	assert.Equal(t, matching.Frequency{Skill: "go", Count: 3}, d.TopSkills[0])
	assert.Equal(t, "docker", d.TopSkills[1].Skill)
}
