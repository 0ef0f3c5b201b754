package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	config "task-collab.com/task-collab/internal/configs"
)

var rootCmd = &cobra.Command{
	Use:           "task-collab",
	Short:         "Collaborative task service",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Info(".env file not found, using environment variables")
		}
	},
}

func loadConfig() config.Config {
	cfg := config.Load()
	config.SetupLogging(cfg.LogLevel)
	return cfg
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
