package main

import (
	"context"
	"fmt"

	"github.com/Barshamagar123/skill-matcher/internal/app"
	"github.com/Barshamagar123/skill-matcher/internal/config"
	"github.com/Barshamagar123/skill-matcher/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "skill-matcher"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "Job marketplace API that matches youth skills with employer postings",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml); environment variables override it")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

// setup loads config, builds the logger and opens the container.
func setup(ctx context.Context) (*app.Container, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log = log.With(zap.String("app", cfg.App.AppName), zap.String("env", cfg.App.Environment))

	c, err := app.NewContainer(ctx, cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("init container: %w", err)
	}
	return c, nil
}

func teardown(c *app.Container) {
	if err := c.Close(); err != nil {
		c.Logger.Warn("close container", zap.Error(err))
	}
	_ = c.Logger.Sync()
}
