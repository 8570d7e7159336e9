package cmd

import (
	"tiffinbox/config"
	"tiffinbox/marketplace-svc/internal/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := config.OpenPostgres(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := storage.NewPostgresRepository(db).EnsureSchema(cmd.Context()); err != nil {
			return err
		}
		log.Info("schema is up to date", "action", "migrate")
		return nil
	},
}
