package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/handler"
	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/middleware"
	"github.com/Barshamagar123/skill-matcher/internal/delivery/http/routes"
	"github.com/Barshamagar123/skill-matcher/internal/pkg/jwt"
	"github.com/Barshamagar123/skill-matcher/internal/repository"
	"github.com/Barshamagar123/skill-matcher/internal/usecase"
	ucauth "github.com/Barshamagar123/skill-matcher/internal/usecase/auth"
	"github.com/Barshamagar123/skill-matcher/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Fiber  *fiber.App
	hub    *ws.Hub
	logger *zap.Logger
}

// New wires repositories, usecases and handlers on top of the container.
func New(c *Container) *App {
	cfg := c.Config
	log := c.Logger

	f := fiber.New(fiber.Config{
		AppName:      cfg.App.AppName,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	})

	f.Use(middleware.NewErrorMiddleware(log).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(log).Middleware())
	f.Use(cors.New(corsConfig(cfg.App.ClientURL)))

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTTL,
		cfg.JWT.RefreshTTL,
		cfg.JWT.Issuer,
	)

	users := repository.NewPostgresUserRepository(c.DB, log)
	jobs := repository.NewPostgresJobRepository(c.DB, log)
	apps := repository.NewPostgresApplicationRepository(c.DB, log)

	hub := ws.NewHub(log)
	notifier := ws.NewNotifier(hub)

	authUC := usecase.NewAuthUsecase(ucauth.NewService(users, log), users, jwtSvc)
	userUC := usecase.NewUserUsecase(users, jobs, apps, log)
	jobUC := usecase.NewJobUsecase(jobs, apps, c.Cache, notifier, log)
	matchUC := usecase.NewMatchingUsecase(jobs, users, apps, c.Cache, cfg.Matching, log)
	insightsUC := usecase.NewInsightsUsecase(jobs, apps, c.Cache, cfg.Matching, log)

	reg := &routes.Registry{
		Auth:     handler.NewAuthHandler(authUC),
		Users:    handler.NewUserHandler(userUC),
		Jobs:     handler.NewJobHandler(jobUC),
		Matching: handler.NewMatchHandler(matchUC),
		Insights: handler.NewInsightsHandler(insightsUC),
		Health:   handler.NewHealthHandler(c.DB, c.Cache),
		JobsWS:   ws.NewHandler(hub, log, AllowedOrigins(cfg.App.ClientURL)).HandleJobsWS,
		AuthMW:   middleware.NewAuthMiddleware(jwtSvc),
	}
	reg.Register(f)

	return &App{Fiber: f, hub: hub, logger: log}
}

// Run serves HTTP on addr until ctx is cancelled, then drains connections.
func (a *App) Run(ctx context.Context, addr string) error {
	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()
	go a.hub.Run(hubCtx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	a.logger.Info("http server started", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.Fiber.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func corsConfig(clientURL string) cors.Config {
	origins := AllowedOrigins(clientURL)
	if len(origins) == 0 {
		return cors.Config{AllowOrigins: []string{"*"}}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowHeaders:     []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, fiber.HeaderAuthorization},
	}
}

// AllowedOrigins splits a comma separated CLIENT_URL.
func AllowedOrigins(clientURL string) []string {
	out := make([]string, 0)
	for _, o := range strings.Split(clientURL, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" && o != "*" {
			out = append(out, o)
		}
	}
	return out
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
