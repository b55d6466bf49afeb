package routes

import (
	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/handler"
	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/middleware"
	"github.com/Barshamagar123/skill-matcher/internal/domain/user"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Auth     *handler.AuthHandler
	Users    *handler.UserHandler
	Jobs     *handler.JobHandler
	Matching *handler.MatchHandler
	Insights *handler.InsightsHandler
	Health   *handler.HealthHandler
	JobsWS   fiber.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	if r.Health != nil {
		app.Get("/health", r.Health.Check)
	}
	if r.JobsWS != nil {
		app.Get("/ws/jobs", r.JobsWS)
	}

	api := app.Group("/api")
	r.registerAuth(api.Group("/auth"))
	r.registerUsers(api.Group("/users", r.AuthMW.Middleware()))
	r.registerJobs(api.Group("/jobs"))
}

func (r *Registry) registerAuth(g fiber.Router) {
	g.Post("/register", r.Auth.Register)
	g.Post("/login", r.Auth.Login)
	g.Post("/refresh", r.Auth.Refresh)
	g.Get("/me", r.AuthMW.Middleware(), r.Auth.Me)
}

func (r *Registry) registerUsers(g fiber.Router) {
	g.Get("/me", r.Users.GetMe)
	g.Put("/me", r.Users.UpdateMe)
	g.Delete("/me", r.Users.DeleteMe)
	g.Get("/skills", r.Users.GetSkills)
	g.Put("/skills", r.Users.UpdateSkills)
	g.Get("/stats", r.Users.Stats)
	g.Post("/search-by-skills", employerOnly(), r.Matching.SearchPeople)
}

// registerJobs mounts the fixed paths before /:id so they are not captured
// as job ids.
func (r *Registry) registerJobs(g fiber.Router) {
	auth := r.AuthMW.Middleware()

	g.Get("/categories", r.Insights.Categories)
	g.Get("/employer/my-jobs", auth, employerOnly(), r.Jobs.ListMine)
	g.Get("/employer/dashboard", auth, employerOnly(), r.Insights.Dashboard)
	g.Post("/search-by-skills", auth, youthOnly(), r.Matching.SearchJobs)
	g.Get("/youth/recommended", auth, youthOnly(), r.Matching.Recommended)

	g.Get("/", r.AuthMW.Optional(), r.Jobs.List)
	g.Post("/", auth, employerOnly(), r.Jobs.Create)
	g.Get("/:id", r.AuthMW.Optional(), r.Jobs.Get)
	g.Put("/:id", auth, employerOnly(), r.Jobs.Update)
	g.Delete("/:id", auth, employerOnly(), r.Jobs.Delete)
	g.Post("/:id/apply", auth, youthOnly(), r.Matching.Apply)
}

func employerOnly() fiber.Handler {
	return middleware.RequireRole(string(user.RoleEmployer))
}

func youthOnly() fiber.Handler {
	return middleware.RequireRole(string(user.RoleYouth))
}
