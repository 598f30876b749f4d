package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/paygate/internal/infrastructure/config"
	"github.com/orris-inc/paygate/internal/infrastructure/database"
	"github.com/orris-inc/paygate/internal/infrastructure/persistence/migrations"
	"github.com/orris-inc/paygate/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage the order and payment table schemas.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply schema changes to bring the order and payment tables up to date.`,
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := initEnv(); err != nil {
		return err
	}
	defer database.Close()

	logger.Info("running migrations")

	if err := migrations.MigrateOrderTables(database.Get()); err != nil {
		return fmt.Errorf("order table migration failed: %w", err)
	}
	if err := migrations.MigratePaymentTables(database.Get()); err != nil {
		return fmt.Errorf("payment table migration failed: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

func initEnv() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}
