package cli

import (
	"github.com/spf13/cobra"

	"learnhub/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Database migration tools",
	Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Migrate the database to the most recent version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRawStore(func(repo *repository.Repository) error {
			return repo.Migrate()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the database by one version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRawStore(func(repo *repository.Repository) error {
			return repo.MigrateDown()
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Dump the migration status for the current DB",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRawStore(func(repo *repository.Repository) error {
			return repo.MigrateStatus()
		})
	},
}

// withRawStore opens the store without the migrate-and-seed bootstrap that
// openStore performs, so migration commands see the schema as it is.
func withRawStore(fn func(*repository.Repository) error) error {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()
	return fn(repo)
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
	RootCmd.AddCommand(migrateCmd)
}
