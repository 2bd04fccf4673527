package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Rana718/volunteer-verse/internal/config"
	"github.com/Rana718/volunteer-verse/internal/seeder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the row counts a seed run would insert",
	Long: `Derive the five table sizes from the volunteer count and print them
without touching the database.

Output formats: text (default), json, yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.BindPFlag("seed.volunteers", cmd.Flags().Lookup("volunteers"))

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cfg.Seed.Volunteers <= 0 {
			return fmt.Errorf("seed.volunteers must be positive, got %d", cfg.Seed.Volunteers)
		}

		plan := seeder.NewPlan(cfg.Seed.Volunteers)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(plan)
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(plan)
		case "text", "":
			plan.Print()
			return nil
		default:
			return fmt.Errorf("unsupported format: %s (use text, json or yaml)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().Int("volunteers", config.DefaultVolunteers, "Number of volunteers; every other count derives from it")
	planCmd.Flags().String("format", "text", "Output format: text, json or yaml")
}
