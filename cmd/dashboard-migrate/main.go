// dashboard-migrate применяет миграции схемы дашборда.
//
// Использование:
//
//	dashboard-migrate up
//	dashboard-migrate down [--target VERSION]
//	dashboard-migrate status
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/config"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/migrate"
	"github.com/NavneetSinhParmar/frontend-v2-backend/internal/telemetry"
)

func main() {
	var timeout time.Duration
	var target int64

	cfg := config.Get()
	logger := telemetry.SetupLogger(cfg.LogLevel, cfg.LogFormat).With("component", "migrate")

	// withRunner создаёт Runner на время одной команды.
	withRunner := func(fn func(ctx context.Context, r *migrate.Runner) error) error {
		r, err := migrate.New(cfg, logger)
		if err != nil {
			return err
		}
		defer r.Close()

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return fn(ctx, r)
	}

	rootCmd := &cobra.Command{
		Use:           "dashboard-migrate",
		Short:         "Apply database migrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Minute, "Command timeout")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(func(ctx context.Context, r *migrate.Runner) error {
				return r.Up(ctx)
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration or down to --target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(func(ctx context.Context, r *migrate.Runner) error {
				return r.Down(ctx, target)
			})
		},
	}
	downCmd.Flags().Int64Var(&target, "target", 0, "Target version (optional)")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRunner(func(ctx context.Context, r *migrate.Runner) error {
				return r.Status(ctx)
			})
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, statusCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
