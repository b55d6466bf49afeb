package main

import (
	"os/signal"
	"syscall"

	"github.com/Barshamagar123/skill-matcher/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and websocket server",
	RunE:  runServe,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := setup(ctx)
	if err != nil {
		return err
	}
	defer teardown(c)

	if migrateOnStart {
		if err := c.Migrate(ctx); err != nil {
			c.Logger.Error("migrate", zap.Error(err))
			return err
		}
	}

	addr, err := app.ListenAddr(c.Config.App.HTTPPort)
	if err != nil {
		return err
	}

	if err := app.New(c).Run(ctx, addr); err != nil {
		c.Logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
