package main

import (
	"log"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the warehouse tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		zapLogger, err := initLogger(cfg.Log)
		if err != nil {
			log.Fatalf("Failed to init logger: %v", err)
		}
		defer zapLogger.Sync()

		db, err := initDatabase(cfg.Database, cfg.Log.Level)
		if err != nil {
			return err
		}
		if err := db.AutoMigrate(entity.All()...); err != nil {
			return err
		}
		zapLogger.Info("Tables migrated", zap.Int("models", len(entity.All())))
		return nil
	},
}
