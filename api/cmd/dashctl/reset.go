package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ansadash/api/internal/infra/postgres"
)

var resetConfirmed bool

var resetDbCmd = &cobra.Command{
	Use:   "reset-db",
	Short: "Drop and recreate all dashboard tables (sandbox only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetConfirmed {
			return fmt.Errorf("this wipes every local table; re-run with --yes to confirm")
		}

		config, db, log := setup()
		if config.ProdEnv {
			return fmt.Errorf("refusing to reset the database in prod")
		}

		if err := postgres.DropTables(db); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
		if err := postgres.Migrate(db); err != nil {
			return fmt.Errorf("recreate tables: %w", err)
		}

		log.Info("database reset complete")
		fmt.Println("all tables dropped and recreated")
		return nil
	},
}

func init() {
	resetDbCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "confirm the destructive reset")
}
