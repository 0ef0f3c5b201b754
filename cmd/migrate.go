package cmd

import (
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	config "task-collab.com/task-collab/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		db, err := config.OpenDatabase(cfg.DatabaseDSN, config.GormLogLevel(cfg.LogLevel))
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		log.Infof("schema of %s is up to date", cfg.DatabaseDSN)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
