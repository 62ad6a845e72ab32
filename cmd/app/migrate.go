package main

import (
	"database/sql"
	"fmt"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func runMigrate(command *cobra.Command, _ []string) error {
	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	if err = config.ValidateDatabase(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := migrations.Apply(command.Context(), db)
	for _, version := range applied {
		fmt.Fprintf(command.OutOrStdout(), "applied %s\n", version)
	}
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		fmt.Fprintln(command.OutOrStdout(), "database is up to date")
	}
	return nil
}
