package cmd

import (
	"context"
	"fmt"

	"github.com/Rana718/volunteer-verse/internal/config"
	"github.com/Rana718/volunteer-verse/internal/seeder"
	"github.com/Rana718/volunteer-verse/internal/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Recreate the schema and fill it with synthetic data",
	Long: `
Drop and recreate the five Volunteer Verse tables, then insert generated
rows in dependency order:

  organizations → supervisors → events → volunteers → volunteer_schedule

The first failing insert aborts the run and rolls back the open transaction.
With --transaction run (default) nothing is kept; with --transaction table
the tables already completed stay committed.

⚠️  WARNING: This drops all existing Volunteer Verse data!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.BindPFlag("seed.volunteers", cmd.Flags().Lookup("volunteers"))
		viper.BindPFlag("seed.random_seed", cmd.Flags().Lookup("random-seed"))
		viper.BindPFlag("seed.transaction", cmd.Flags().Lookup("transaction"))

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
		if !input.AskConfirmation("⚠️  This drops and recreates all Volunteer Verse tables. Continue?", force) {
			color.Yellow("❌ Seeding cancelled")
			return nil
		}

		report, err := seeder.New(cfg, adapter).Seed(ctx)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}

		color.White("Run %s finished in %s", report.RunID, report.Elapsed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Int("volunteers", config.DefaultVolunteers, "Number of volunteers; every other count derives from it")
	seedCmd.Flags().Uint64("random-seed", 0, "Random seed for reproducible data (0 = time based)")
	seedCmd.Flags().String("transaction", config.TransactionPerRun, "Transaction scope: run or table")
	seedCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}
