package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ddy/habitpulse/internal/backup"
	"github.com/ddy/habitpulse/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reset by discarding the existing database before initialization. A backup is taken first."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// The reset is destructive, so keep a copy of whatever is there
			mgr := backup.NewManager(dbPath)
			if backupPath, err := mgr.CreateBackup(); err == nil {
				fmt.Printf("Backed up existing database to: %s\n", filepath.Base(backupPath))
			} else {
				fmt.Fprintf(os.Stderr, "Warning: could not back up existing database: %v\n", err)
			}

			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habitpulse storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
