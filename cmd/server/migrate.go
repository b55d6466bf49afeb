package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		c, err := setup(ctx)
		if err != nil {
			return err
		}
		defer teardown(c)

		return c.Migrate(ctx)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo employer, youth and job rows",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		c, err := setup(ctx)
		if err != nil {
			return err
		}
		defer teardown(c)

		if err := c.Migrate(ctx); err != nil {
			return err
		}
		return c.Seed(ctx)
	},
}
