package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"learnhub/internal/repository"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all data and restore the starter catalog",
	Long:  `Drops every course, lesson, enrollment and progress record, recreates the schema and reseeds the starter catalog. All learner progress is lost.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}
		return withRawStore(func(repo *repository.Repository) error {
			if err := repo.Reset(); err != nil {
				return err
			}
			fmt.Println("Store reset; starter catalog restored.")
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the destructive reset")
	RootCmd.AddCommand(resetCmd)
}
