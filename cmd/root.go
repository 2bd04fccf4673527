package cmd

import (
	"fmt"

	"github.com/Rana718/volunteer-verse/internal/config"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.0.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════════╗",
		"║   ██╗   ██╗ ██████╗ ██╗     ██╗   ██╗███████╗██████╗        ║",
		"║   ██║   ██║██╔═══██╗██║     ██║   ██║██╔════╝██╔══██╗       ║",
		"║   ██║   ██║██║   ██║██║     ██║   ██║█████╗  ██████╔╝       ║",
		"║   ╚██╗ ██╔╝██║   ██║██║     ╚██╗ ██╔╝██╔══╝  ██╔══██╗       ║",
		"║    ╚████╔╝ ╚██████╔╝███████╗ ╚████╔╝ ███████╗██║  ██║       ║",
		"║     ╚═══╝   ╚═════╝ ╚══════╝  ╚═══╝  ╚══════╝╚═╝  ╚═╝       ║",
		"║                                                              ║",
		"║          🌱 Volunteer Verse synthetic data seeder 🌱          ║",
		"╚══════════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("                        ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "vverse",
	Short: "Create the Volunteer Verse schema and fill it with synthetic data",
	Long: `
vverse drops and recreates the Volunteer Verse tables (volunteers,
organizations, supervisors, events, volunteer_schedule) and fills them
with proportional, referentially consistent fake data.

Every row count derives from the number of volunteers:
- events        = ceil(volunteers / 25.9)
- organizations = ceil(events / 4.3)
- supervisors   = ceil(organizations * 2.2)
- schedules     = ceil(volunteers * 2.7)

Database Support:
- PostgreSQL
- MySQL
- SQLite`,
	SilenceUsage:  true,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("vverse version %s\n", Version)
			return nil
		}

		showBanner()
		fmt.Println()
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./vverse.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("vverse.config")
	}

	config.BindEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			color.Yellow("⚠️  Could not read config file %s: %v", cfgFile, err)
		}
	}
}
