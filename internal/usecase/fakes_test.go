package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/domain/application"
	"github.com/Barshamagar123/skill-matcher/internal/domain/job"
	"github.com/Barshamagar123/skill-matcher/internal/domain/skillset"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"
	"github.com/Barshamagar123/skill-matcher/internal/repository"

	"github.com/google/uuid"
)

type fakeUsers struct {
	mu    sync.Mutex
	items []user.User
	err   error
}

func (f *fakeUsers) find(pred func(user.User) bool) (int, bool) {
	for i, u := range f.items {
		if pred(u) {
			return i, true
		}
	}
	return -1, false
}

func (f *fakeUsers) CreateUser(_ context.Context, u user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.find(func(x user.User) bool { return x.Email == u.Email }); ok {
		return repository.ErrEmailTaken
	}
	u.CreatedAt = time.Now()
	f.items = append(f.items, u)
	return nil
}

func (f *fakeUsers) GetUserByID(_ context.Context, id uuid.UUID) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return user.User{}, f.err
	}
	if i, ok := f.find(func(x user.User) bool { return x.ID == id }); ok {
		return f.items[i], nil
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i, ok := f.find(func(x user.User) bool { return x.Email == email }); ok {
		return f.items[i], nil
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.find(func(x user.User) bool { return x.Email == email })
	return ok, f.err
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id uuid.UUID, in user.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.find(func(x user.User) bool { return x.ID == id })
	if !ok {
		return user.ErrNotFound
	}
	u := &f.items[i]
	if in.Name != nil {
		u.Name = in.Name
	}
	if in.Location != nil {
		u.Location = in.Location
	}
	if in.Bio != nil {
		u.Bio = in.Bio
	}
	if in.Interests != nil {
		u.Interests = in.Interests
	}
	if in.Skills != nil {
		u.Skills = *in.Skills
		u.ProfileComplete = !in.Skills.IsEmpty()
	}
	return nil
}

func (f *fakeUsers) UpdateSkills(ctx context.Context, id uuid.UUID, s skillset.Set) error {
	return f.UpdateProfile(ctx, id, user.ProfileUpdate{Skills: &s})
}

func (f *fakeUsers) TouchLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i, ok := f.find(func(x user.User) bool { return x.ID == id }); ok {
		f.items[i].LastLogin = &at
	}
	return nil
}

func (f *fakeUsers) DeleteUser(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, ok := f.find(func(x user.User) bool { return x.ID == id })
	if !ok {
		return user.ErrNotFound
	}
	f.items = append(f.items[:i], f.items[i+1:]...)
	return nil
}

func (f *fakeUsers) ListSkilledYouth(_ context.Context, limit int) ([]user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]user.User, 0)
	for _, u := range f.items {
		if u.Role == user.RoleYouth && u.ProfileComplete && len(out) < limit {
			out = append(out, u)
		}
	}
	return out, f.err
}

// fakeJobs keeps jobs in pool order: index 0 is the newest.
type fakeJobs struct {
	mu    sync.Mutex
	items []job.Job
	err   error
	views map[uuid.UUID]int
}

func (f *fakeJobs) Create(_ context.Context, j job.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.items = append([]job.Job{j}, f.items...)
	return nil
}

func (f *fakeJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, j := range f.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (f *fakeJobs) Update(_ context.Context, id uuid.UUID, in job.Update) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID != id {
			continue
		}
		j := &f.items[i]
		if in.Title != nil {
			j.Title = *in.Title
		}
		if in.Description != nil {
			j.Description = *in.Description
		}
		if in.RequiredSkills != nil {
			j.RequiredSkills = *in.RequiredSkills
		}
		if in.SalaryMin != nil {
			j.SalaryMin = in.SalaryMin
		}
		if in.SalaryMax != nil {
			j.SalaryMax = in.SalaryMax
		}
		if in.IsActive != nil {
			j.IsActive = *in.IsActive
		}
		return nil
	}
	return repository.ErrJobNotFound
}

func (f *fakeJobs) Deactivate(ctx context.Context, id uuid.UUID) error {
	off := false
	return f.Update(ctx, id, job.Update{IsActive: &off})
}

func (f *fakeJobs) IncrementViews(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Views++
		}
	}
	return nil
}

func (f *fakeJobs) List(_ context.Context, flt repository.JobFilter) ([]job.Job, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, 0, f.err
	}
	all := make([]job.Job, 0)
	for _, j := range f.items {
		if !j.IsActive {
			continue
		}
		if flt.Search != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(flt.Search)) {
			continue
		}
		if flt.JobType != "" && string(j.JobType) != flt.JobType {
			continue
		}
		all = append(all, j)
	}
	total := len(all)
	start := min(flt.Offset, total)
	end := min(start+flt.Limit, total)
	return all[start:end], total, nil
}

func (f *fakeJobs) ListByEmployer(_ context.Context, employerID uuid.UUID, st repository.JobStatus) ([]job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]job.Job, 0)
	for _, j := range f.items {
		if j.EmployerID != employerID {
			continue
		}
		if (st == repository.JobStatusActive && !j.IsActive) || (st == repository.JobStatusInactive && j.IsActive) {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobs) ListActivePool(_ context.Context, limit int) ([]job.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]job.Job, 0)
	for _, j := range f.items {
		if j.IsActive && len(out) < limit {
			out = append(out, j)
		}
	}
	return out, nil
}

func (f *fakeJobs) PopularLocations(_ context.Context, limit int) ([]repository.LocationCount, error) {
	counts := map[string]int{}
	order := []string{}
	for _, j := range f.items {
		if j.Location == nil || !j.IsActive {
			continue
		}
		if _, ok := counts[*j.Location]; !ok {
			order = append(order, *j.Location)
		}
		counts[*j.Location]++
	}
	out := make([]repository.LocationCount, 0, len(order))
	for _, l := range order {
		out = append(out, repository.LocationCount{Location: l, Count: counts[l]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeJobs) CountActiveByType(context.Context) ([]repository.TypeCount, error) {
	counts := map[job.Type]int{}
	order := []job.Type{}
	for _, j := range f.items {
		if !j.IsActive {
			continue
		}
		if _, ok := counts[j.JobType]; !ok {
			order = append(order, j.JobType)
		}
		counts[j.JobType]++
	}
	out := make([]repository.TypeCount, 0, len(order))
	for _, t := range order {
		out = append(out, repository.TypeCount{Type: t, Count: counts[t]})
	}
	return out, nil
}

func (f *fakeJobs) EmployerStats(_ context.Context, employerID uuid.UUID) (repository.EmployerJobStats, error) {
	st := repository.EmployerJobStats{JobsByType: map[job.Type]int{}}
	for _, j := range f.items {
		if j.EmployerID != employerID {
			continue
		}
		st.TotalJobs++
		if j.IsActive {
			st.ActiveJobs++
		}
		st.TotalViews += j.Views
		st.JobsByType[j.JobType]++
	}
	return st, nil
}

type fakeApps struct {
	mu    sync.Mutex
	items []application.Application
	jobs  *fakeJobs
	users *fakeUsers
	err   error
}

func (f *fakeApps) Create(_ context.Context, a application.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, x := range f.items {
		if x.JobID == a.JobID && x.UserID == a.UserID {
			return repository.ErrApplicationExists
		}
	}
	f.items = append(f.items, a)
	return nil
}

func (f *fakeApps) employerOf(jobID uuid.UUID) uuid.UUID {
	j, err := f.jobs.GetByID(context.Background(), jobID)
	if err != nil {
		return uuid.Nil
	}
	return j.EmployerID
}

func (f *fakeApps) CountByStatusForUser(_ context.Context, userID uuid.UUID) (map[application.Status]int, error) {
	out := map[application.Status]int{}
	for _, a := range f.items {
		if a.UserID == userID {
			out[a.Status]++
		}
	}
	return out, nil
}

func (f *fakeApps) CountByStatusForEmployer(_ context.Context, employerID uuid.UUID) (map[application.Status]int, error) {
	out := map[application.Status]int{}
	for _, a := range f.items {
		if f.employerOf(a.JobID) == employerID {
			out[a.Status]++
		}
	}
	return out, nil
}

func (f *fakeApps) CountRecentForEmployer(_ context.Context, employerID uuid.UUID, since time.Time) (int, error) {
	n := 0
	for _, a := range f.items {
		if f.employerOf(a.JobID) == employerID && !a.AppliedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeApps) FindByJobAndUser(_ context.Context, jobID, userID uuid.UUID) (application.Application, error) {
	for _, a := range f.items {
		if a.JobID == jobID && a.UserID == userID {
			return a, nil
		}
	}
	return application.Application{}, repository.ErrApplicationNotFound
}

func (f *fakeApps) ListApplicantSkills(ctx context.Context, employerID uuid.UUID, limit int) ([]skillset.Set, error) {
	out := make([]skillset.Set, 0)
	for _, a := range f.items {
		if f.employerOf(a.JobID) != employerID || len(out) >= limit {
			continue
		}
		u, err := f.users.GetUserByID(ctx, a.UserID)
		if err != nil {
			continue
		}
		out = append(out, u.Skills)
	}
	return out, nil
}

type fakeCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	sets        int
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.sets++
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, prefixes ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		for _, p := range prefixes {
			if strings.HasPrefix(k, p) {
				delete(c.data, k)
			}
		}
	}
	c.invalidated++
	return nil
}

type postedEvent struct {
	id     uuid.UUID
	skills []string
}

type fakeEvents struct {
	posted []postedEvent
}

func (e *fakeEvents) JobPosted(id uuid.UUID, _, _, _ string, skills []string) {
	e.posted = append(e.posted, postedEvent{id: id, skills: skills})
}

var errDB = errors.New("db down")

func ptr[T any](v T) *T { return &v }

func newJob(employer uuid.UUID, title string, skills ...string) job.Job {
	return job.Job{
		ID:             uuid.New(),
		EmployerID:     employer,
		Title:          title,
		Description:    "a sufficiently long description",
		JobType:        job.TypeFullTime,
		RequiredSkills: skillset.New(skills...),
		IsActive:       true,
	}
}

func newUser(role user.Role, skills ...string) user.User {
	s := skillset.New(skills...)
	return user.User{
		ID:              uuid.New(),
		Email:           uuid.NewString() + "@example.com",
		Role:            role,
		Skills:          s,
		ProfileComplete: !s.IsEmpty(),
	}
}
