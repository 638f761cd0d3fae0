package cli

import (
	"fmt"
	"log"

	"human-or-ai/internal/config"
	"human-or-ai/internal/content"
	pgstore "human-or-ai/internal/infra/postgres"
	"human-or-ai/internal/infra/sqlite"
	"github.com/spf13/cobra"
)

// NewSeedCmd writes the built-in statement bank into a database.
func NewSeedCmd(configPath *string) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Store the built-in statement bank in Postgres or SQLite",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			bank := content.DefaultBank()
			if cfg.Content.Bank != "" {
				bank.ID = cfg.Content.Bank
			}

			switch target {
			case config.SourcePostgres:
				if err := runMigrationsWithConfig(cmd.Context(), cfg); err != nil {
					return err
				}
				db, err := openBunDB(cfg)
				if err != nil {
					return err
				}
				defer db.Close()
				if err := pgstore.SeedBank(cmd.Context(), db, bank); err != nil {
					return err
				}
			case config.SourceSQLite:
				if cfg.SQLite.Path == "" {
					return fmt.Errorf("sqlite path not configured")
				}
				store, err := sqlite.Open(cfg.SQLite.Path)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.SaveBank(cmd.Context(), bank); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown seed target %q", target)
			}
			log.Printf("seeded bank %q with %d statements into %s", bank.ID, len(bank.Statements), target)
			return nil
		},
	}
	cmd.Flags().StringVar(&target, "target", config.SourcePostgres, "database to seed: postgres or sqlite")
	return cmd
}
