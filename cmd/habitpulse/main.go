package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ddy/habitpulse/internal/cli"
	"github.com/ddy/habitpulse/internal/cli/backups"
	"github.com/ddy/habitpulse/internal/cli/habits"
	"github.com/ddy/habitpulse/internal/cli/system"
	"github.com/ddy/habitpulse/internal/constants"
	errs "github.com/ddy/habitpulse/internal/errors"
	"github.com/ddy/habitpulse/internal/logger"
	"github.com/ddy/habitpulse/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path." type:"string" default:"~/.config/habitpulse/habitpulse.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd    `cmd:"" help:"Initialize habitpulse storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit   habits.HabitCmd   `cmd:"" help:"Manage habits."`
	Backup  struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Single-user habit tracker with reminders and SMS supervision"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	dbPath := expandHome(CLI.Config)
	logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(dbPath),
	})

	store := storage.NewSQLiteStore(dbPath)
	appCtx := &cli.Context{Store: store}

	// Init handles its own loading so a missing database is not an error there.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errs.Fatal(err)
		}
	}

	errs.Fatal(ctx.Run(appCtx))
}
