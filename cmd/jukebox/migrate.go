package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer syncLogger(logger)

		repo, err := openRepository(cmd.Context(), cfg.Database, logger)
		if err != nil {
			return err
		}
		defer repo.Close()

		if err := repo.Migrate(cmd.Context()); err != nil {
			return err
		}
		logger.Info("Database schema migrated")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
