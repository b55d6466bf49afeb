package app

import (
	"context"
	"errors"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/config"
	"github.com/Barshamagar123/skill-matcher/internal/database"
	"github.com/Barshamagar123/skill-matcher/internal/database/migration"
	dbpostgres "github.com/Barshamagar123/skill-matcher/internal/database/postgres"
	"github.com/Barshamagar123/skill-matcher/internal/database/seeder"
	"github.com/Barshamagar123/skill-matcher/internal/infrastructure/cache"
	"github.com/Barshamagar123/skill-matcher/migrations"

	"go.uber.org/zap"
)

// Container owns the process-wide connections.
type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
}

func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Cache:  cache.NewRedis(ctx, cfg.Redis, log),
	}, nil
}

func (c *Container) Migrate(ctx context.Context) error {
	r := migration.Runner{FS: migrations.FS, Logger: c.Logger}
	return r.Run(ctx, c.DB.SQLDB())
}

func (c *Container) Seed(ctx context.Context) error {
	r := seeder.Runner{Seeders: seeder.Defaults(), Logger: c.Logger.Named("seeder")}
	return r.Run(ctx, c.DB)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
