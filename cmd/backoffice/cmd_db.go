package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/backoffice/config"
	"github.com/shashiranjanraj/backoffice/database/seeders"
	"github.com/shashiranjanraj/backoffice/pkg/database"
	"github.com/shashiranjanraj/backoffice/pkg/migration"
)

// withDB loads config, opens the database and closes it after fn.
func withDB(ctx context.Context, fn func(db *gorm.DB) error) error {
	if err := config.Load(); err != nil {
		return err
	}
	db, err := database.Connect(ctx)
	if err != nil {
		return err
	}
	defer database.Close(db) //nolint:errcheck
	return fn(db)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run all pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			applied, err := migration.New(db, nil).Run(cmd.Context())
			for _, name := range applied {
				fmt.Println("migrated:", name)
			}
			if err == nil && len(applied) == 0 {
				fmt.Println("nothing to migrate")
			}
			return err
		})
	},
}

var migrateRollbackCmd = &cobra.Command{
	Use:   "migrate:rollback",
	Short: "Roll back the last batch of migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			reverted, err := migration.New(db, nil).Rollback(cmd.Context())
			for _, name := range reverted {
				fmt.Println("rolled back:", name)
			}
			if err == nil && len(reverted) == 0 {
				fmt.Println("nothing to roll back")
			}
			return err
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "migrate:status",
	Short: "Show the status of each migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			status, err := migration.New(db, nil).Status(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range status {
				state := "pending"
				if s.Ran {
					state = fmt.Sprintf("ran (batch %d)", s.Batch)
				}
				fmt.Printf("%-50s %s\n", s.Name, state)
			}
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run all database seeders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(db *gorm.DB) error {
			ran, err := seeders.RunAll(cmd.Context(), db)
			for _, name := range ran {
				fmt.Println("seeded:", name)
			}
			return err
		})
	},
}
