package main

import (
	"github.com/gartstein/jukebox/internal/jukebox/db"
	"github.com/gartstein/jukebox/internal/jukebox/seed"
	"github.com/spf13/cobra"
)

var fixturesPath string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load marketing content fixtures into the database",
	Long: `Inserts product features, business solutions, content pages and
sample locations. Without --file the fixtures built into the binary are
used. Existing content is kept.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&fixturesPath, "file", "", "YAML fixtures file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	fixtures, err := seed.Default()
	if fixturesPath != "" {
		fixtures, err = seed.LoadFile(fixturesPath)
	}
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	repo, err := openRepository(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		return err
	}

	return repo.WithTransaction(ctx, func(tx *db.Repository) error {
		_, err := seed.NewSeeder(tx, logger).Run(ctx, fixtures)
		return err
	})
}
