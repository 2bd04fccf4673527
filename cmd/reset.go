package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/volunteer-verse/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop and recreate the Volunteer Verse tables",
	Long: `
Reset the database by dropping the five Volunteer Verse tables and
creating them again, empty. Running it twice leaves the same empty schema.

⚠️  WARNING: This will permanently delete all Volunteer Verse data!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		adapter, err := connect(ctx, cfg)
		if err != nil {
			return err
		}
		defer adapter.Close()

		force, _ := cmd.Flags().GetBool("force")
		input := &utils.InputUtils{}
		if !input.AskConfirmation("⚠️  Are you sure you want to reset the database?", force) {
			color.Yellow("❌ Reset cancelled")
			return nil
		}

		color.Yellow("🗑️  Dropping and recreating tables...")
		if err := adapter.ResetSchema(ctx); err != nil {
			return fmt.Errorf("failed to reset schema: %w", err)
		}

		color.Green("✅ Database reset successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}
