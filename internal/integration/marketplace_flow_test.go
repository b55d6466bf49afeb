package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/app"
	"github.com/Barshamagar123/skill-matcher/internal/config"
	"github.com/Barshamagar123/skill-matcher/internal/database"
	dbpostgres "github.com/Barshamagar123/skill-matcher/internal/database/postgres"
	"github.com/Barshamagar123/skill-matcher/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type session struct {
	User struct {
		ID uuid.UUID `json:"id"`
	} `json:"user"`
	AccessToken string `json:"accessToken"`
}

type jobMatch struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	MatchPercentage int       `json:"matchPercentage"`
	MatchingSkills  []string  `json:"matchingSkills"`
	SkillGap        []string  `json:"skillGap"`
}

func TestIntegration_PostMatchApply(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	c := &app.Container{
		Config: testConfig(),
		Logger: zap.NewNop(),
		DB:     db,
		Cache:  cache.NewRedis(ctx, config.RedisConfig{}, nil),
	}
	require.NoError(t, c.Migrate(ctx))

	f := app.New(c).Fiber
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	employerEmail := "it-employer-" + suffix + "@example.com"
	youthEmail := "it-youth-" + suffix + "@example.com"
	defer cleanup(t, db, employerEmail, youthEmail)

	employer := register(t, f, employerEmail, "EMPLOYER")
	youth := register(t, f, youthEmail, "")

	status, _ := call(t, f, http.MethodPut, "/api/users/skills", youth.AccessToken, map[string]any{"skills": []string{"python", "sql"}})
	require.Equal(t, fiber.StatusOK, status)

	titles := []string{"IT " + suffix + " A", "IT " + suffix + " B", "IT " + suffix + " C"}
	skills := [][]string{{"python", "sql", "docker"}, {"java"}, {"python"}}
	ids := make([]uuid.UUID, len(titles))
	for i := range titles {
		status, body := call(t, f, http.MethodPost, "/api/jobs", employer.AccessToken, map[string]any{
			"title":          titles[i],
			"description":    "Integration test posting number " + titles[i],
			"jobType":        "FULL_TIME",
			"requiredSkills": skills[i],
		})
		require.Equal(t, fiber.StatusCreated, status, string(body.Data))

		var created struct {
			Job struct {
				ID uuid.UUID `json:"id"`
			} `json:"job"`
		}
		require.NoError(t, json.Unmarshal(body.Data, &created))
		ids[i] = created.Job.ID
	}

	status, body := call(t, f, http.MethodPost, "/api/jobs/search-by-skills", youth.AccessToken, map[string]any{"skills": []string{"python", "sql"}})
	require.Equal(t, fiber.StatusOK, status)
	mine := onlyTitles(t, body, suffix)
	require.Len(t, mine, 2)
	assert.Equal(t, titles[2], mine[0].Title)
	assert.Equal(t, 100, mine[0].MatchPercentage)
	assert.Equal(t, titles[0], mine[1].Title)
	assert.Equal(t, 67, mine[1].MatchPercentage)
	assert.Equal(t, []string{"docker"}, mine[1].SkillGap)

	status, body = call(t, f, http.MethodGet, "/api/jobs/youth/recommended", youth.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, onlyTitles(t, body, suffix))

	status, body = call(t, f, http.MethodPost, "/api/jobs/"+ids[0].String()+"/apply", youth.AccessToken, nil)
	require.Equal(t, fiber.StatusCreated, status, body.Message)
	assert.Contains(t, string(body.Data), `"matchPercentage":67`)

	status, _ = call(t, f, http.MethodPost, "/api/jobs/"+ids[0].String()+"/apply", youth.AccessToken, nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = call(t, f, http.MethodGet, "/api/jobs/employer/dashboard", employer.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, status)
	var dash struct {
		Stats struct {
			TotalJobs         int `json:"totalJobs"`
			TotalApplications int `json:"totalApplications"`
			TopSkills         []struct {
				Skill string `json:"skill"`
			} `json:"topSkills"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &dash))
	assert.Equal(t, 3, dash.Stats.TotalJobs)
	assert.Equal(t, 1, dash.Stats.TotalApplications)
	require.Len(t, dash.Stats.TopSkills, 2)
	assert.Equal(t, "python", dash.Stats.TopSkills[0].Skill)

	status, _ = call(t, f, http.MethodDelete, "/api/jobs/"+ids[2].String(), youth.AccessToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)
	status, _ = call(t, f, http.MethodDelete, "/api/jobs/"+ids[2].String(), employer.AccessToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, body = call(t, f, http.MethodPost, "/api/jobs/search-by-skills", youth.AccessToken, map[string]any{"skills": []string{"python", "sql"}})
	require.Equal(t, fiber.StatusOK, status)
	mine = onlyTitles(t, body, suffix)
	require.Len(t, mine, 1)
	assert.Equal(t, titles[0], mine[0].Title)
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "skill-matcher", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{
			AccessSecret:  stringsOrDefault(os.Getenv("TEST_JWT_SECRET"), "test-access-secret"),
			RefreshSecret: "test-refresh-secret",
			AccessTTL:     15 * time.Minute,
			RefreshTTL:    24 * time.Hour,
			Issuer:        "skill-matcher-test",
		},
		Matching: config.MatchingConfig{
			PoolLimit:          100,
			CategoryPoolLimit:  200,
			RecommendedLimit:   10,
			TopApplicantSkills: 10,
			PopularSkills:      20,
			PopularLocations:   20,
		},
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}, zap.NewNop())
	require.NoError(t, err, "connect db")
	return db
}

func cleanup(t *testing.T, db database.DB, emails ...string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, e := range emails {
		_, _ = db.Exec(ctx, `DELETE FROM users WHERE email = $1`, e)
	}
}

func register(t *testing.T, f *fiber.App, email, role string) session {
	t.Helper()

	status, body := call(t, f, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "Secret123",
		"role":     role,
	})
	require.Equal(t, fiber.StatusCreated, status, body.Message)

	var s session
	require.NoError(t, json.Unmarshal(body.Data, &s))
	require.NotEmpty(t, s.AccessToken)
	return s
}

func call(t *testing.T, f *fiber.App, method, path, token string, payload any) (int, semanticResponse) {
	t.Helper()

	var buf bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &buf)
	if payload != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := f.Test(req, fiber.TestConfig{Timeout: 10 * time.Second})
	require.NoError(t, err)
	defer resp.Body.Close()

	var sr semanticResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sr))
	return resp.StatusCode, sr
}

// onlyTitles keeps the matches created by this run; the database may hold
// other active jobs.
func onlyTitles(t *testing.T, body semanticResponse, suffix string) []jobMatch {
	t.Helper()

	var data struct {
		Jobs []jobMatch `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))

	out := make([]jobMatch, 0)
	for _, j := range data.Jobs {
		if strings.Contains(j.Title, suffix) {
			out = append(out, j)
		}
	}
	return out
}

func stringsOrDefault(v, def string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return def
}
