package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ddy/habitpulse/internal/backup"
	"github.com/ddy/habitpulse/internal/cli"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	dbPath := ctx.Store.GetConfigPath()
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitpulse init' first")
	}

	// A migration can rewrite the schema, so snapshot the database first
	mgr := backup.NewManager(dbPath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("failed to back up database before migration: %w", err)
	}
	fmt.Printf("Backed up database to: %s\n", filepath.Base(backupPath))

	// Init opens the database and applies any pending migrations
	if err := ctx.Store.Init(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}
