package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"linkshortener/internal/repository"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.migrate(cmd.Context())
		},
	}
}

func (a *app) migrate(ctx context.Context) error {
	pool, err := repository.Open(ctx, &a.cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := repository.NewLinkRepository(pool).Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	a.logger.Info("database schema is up to date")
	return nil
}
