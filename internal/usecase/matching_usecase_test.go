package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/config"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchFixture struct {
	jobs  *fakeJobs
	users *fakeUsers
	apps  *fakeApps
	cache *fakeCache
	uc    *MatchingUsecase
}

func testMatchingConfig() config.MatchingConfig {
	return config.MatchingConfig{
		PoolLimit:          100,
		CategoryPoolLimit:  200,
		RecommendedLimit:   2,
		TopApplicantSkills: 3,
		PopularSkills:      3,
		PopularLocations:   3,
	}
}

func newMatchFixture(jobs ...job.Job) matchFixture {
	fj := &fakeJobs{items: jobs}
	fu := &fakeUsers{}
	fa := &fakeApps{jobs: fj, users: fu}
	cache := newFakeCache()
	return matchFixture{
		jobs:  fj,
		users: fu,
		apps:  fa,
		cache: cache,
		uc:    NewMatchingUsecase(fj, fu, fa, cache, testMatchingConfig(), nil),
	}
}

func titles(res []JobMatch) []string {
	out := make([]string, 0, len(res))
	for _, r := range res {
		out = append(out, r.Candidate.Item.Title)
	}
	return out
}

func TestMatchingUsecase_SearchJobs(t *testing.T) {
	employer := uuid.New()
	f := newMatchFixture(
		newJob(employer, "A", "python", "sql", "docker"),
		newJob(employer, "B", "java"),
		newJob(employer, "C", "python"),
	)
	ctx := context.Background()

	res, err := f.uc.SearchJobs(ctx, []string{"python", "sql"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, titles(res))
	assert.Equal(t, 100, res[0].MatchPercentage)
	assert.Equal(t, 67, res[1].MatchPercentage)
	assert.Equal(t, []string{"docker"}, res[1].SkillGap.Names())
	assert.Equal(t, 1, f.cache.sets)

	f.jobs.items = nil
	cached, err := f.uc.SearchJobs(ctx, []string{"python", "sql"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, titles(cached))
	assert.Equal(t, []string{"python", "sql"}, cached[1].MatchingSkills.Names())
}

func TestMatchingUsecase_SearchJobsInvalid(t *testing.T) {
	f := newMatchFixture(newJob(uuid.New(), "A", "go"))
	ctx := context.Background()

	for _, skills := range [][]string{nil, {}, {"go", ""}, {"  "}} {
		_, err := f.uc.SearchJobs(ctx, skills)
		assert.True(t, errors.Is(err, ErrInvalidInput), "skills=%q", skills)
	}

	f.jobs.err = errDB
	_, err := f.uc.SearchJobs(ctx, []string{"go"})
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestMatchingUsecase_SearchJobsSkipsInactive(t *testing.T) {
	closed := newJob(uuid.New(), "closed", "go")
	closed.IsActive = false
	f := newMatchFixture(closed, newJob(uuid.New(), "open", "go", "sql"))

	res, err := f.uc.SearchJobs(context.Background(), []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"open"}, titles(res))
}

func TestMatchingUsecase_Recommended(t *testing.T) {
	employer := uuid.New()
	f := newMatchFixture(
		newJob(employer, "one", "go"),
		newJob(employer, "two", "go", "sql"),
		newJob(employer, "three", "go", "sql", "k8s"),
	)
	ctx := context.Background()

	seeker := newUser(user.RoleYouth, "go", "sql")
	blank := newUser(user.RoleYouth)
	f.users.items = append(f.users.items, seeker, blank)

	res, err := f.uc.Recommended(ctx, seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, titles(res))

	res, err = f.uc.Recommended(ctx, blank.ID)
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	_, err = f.uc.Recommended(ctx, uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMatchingUsecase_SearchPeople(t *testing.T) {
	f := newMatchFixture()
	ctx := context.Background()

	full := newUser(user.RoleYouth, "react")
	full.PasswordHash = "secret"
	full.Phone = ptr("555")
	partial := newUser(user.RoleYouth, "react", "node", "css")
	other := newUser(user.RoleYouth, "cobol")
	boss := newUser(user.RoleEmployer, "react")
	f.users.items = append(f.users.items, partial, full, other, boss)

	res, err := f.uc.SearchPeople(ctx, []string{"react", "node"}, 0)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, full.ID, res[0].Candidate.ID)
	assert.Equal(t, 100, res[0].MatchPercentage)
	assert.Empty(t, res[0].Candidate.Item.PasswordHash)
	assert.Nil(t, res[0].Candidate.Item.Phone)
	assert.Equal(t, partial.ID, res[1].Candidate.ID)
	assert.Equal(t, 67, res[1].MatchPercentage)

	res, err = f.uc.SearchPeople(ctx, []string{"react"}, 1)
	require.NoError(t, err)
	assert.Len(t, res, 1)

	_, err = f.uc.SearchPeople(ctx, nil, 5)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestMatchingUsecase_SearchPeopleLimitCappedAtPool(t *testing.T) {
	f := newMatchFixture()
	f.uc.cfg.PoolLimit = 2
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		f.users.items = append(f.users.items, newUser(user.RoleYouth, "go"))
	}

	res, err := f.uc.SearchPeople(ctx, []string{"go"}, 500)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	f.uc.cfg.PoolLimit = 100
	res, err = f.uc.SearchPeople(ctx, []string{"go"}, 60)
	require.NoError(t, err)
	assert.Len(t, res, 4)
}

func TestMatchingUsecase_Apply(t *testing.T) {
	employer := uuid.New()
	open := newJob(employer, "open", "python", "sql", "docker")
	closed := newJob(employer, "closed", "python")
	closed.IsActive = false
	expired := newJob(employer, "expired", "python")
	expired.Deadline = ptr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	f := newMatchFixture(open, closed, expired)
	f.uc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	seeker := newUser(user.RoleYouth, "python")
	f.users.items = append(f.users.items, seeker)

	a, err := f.uc.Apply(ctx, open.ID, seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, a.MatchPercentage)
	assert.Equal(t, "PENDING", string(a.Status))

	_, err = f.uc.Apply(ctx, open.ID, seeker.ID)
	assert.True(t, errors.Is(err, ErrConflict))

	_, err = f.uc.Apply(ctx, closed.ID, seeker.ID)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = f.uc.Apply(ctx, expired.ID, seeker.ID)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = f.uc.Apply(ctx, uuid.New(), seeker.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = f.uc.Apply(ctx, open.ID, uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMatchingUsecase_ApplyDropsCachedSearches(t *testing.T) {
	employer := uuid.New()
	open := newJob(employer, "open", "python", "sql")
	f := newMatchFixture(open)
	ctx := context.Background()

	seeker := newUser(user.RoleYouth, "python")
	f.users.items = append(f.users.items, seeker)

	_, err := f.uc.SearchJobs(ctx, []string{"python"})
	require.NoError(t, err)
	key := JobsMatchCacheKey(skillset.New("python"), f.uc.cfg.PoolLimit)
	require.Contains(t, f.cache.data, key)

	_, err = f.uc.Apply(ctx, open.ID, seeker.ID)
	require.NoError(t, err)
	assert.NotContains(t, f.cache.data, key)
	assert.Equal(t, 1, f.cache.invalidated)

	_, err = f.uc.Apply(ctx, open.ID, seeker.ID)
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, 1, f.cache.invalidated)
}
