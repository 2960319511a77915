package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ddy/habitpulse/internal/constants"
)

func createTestDB(t *testing.T, dir string) string {
	t.Helper()
	dbPath := filepath.Join(dir, "habitpulse.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec("CREATE TABLE habits (id INTEGER PRIMARY KEY, title TEXT)"); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec("INSERT INTO habits (title) VALUES ('run')"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}
	return dbPath
}

func countHabits(t *testing.T, dbPath string) int {
	t.Helper()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		t.Fatalf("failed to count habits: %v", err)
	}
	return count
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	dbPath := createTestDB(t, dir)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		t.Errorf("unexpected backup filename: %s", name)
	}
	if got := countHabits(t, backupPath); got != 1 {
		t.Errorf("backup missing data, got %d habits", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	dir := t.TempDir()
	dbPath := createTestDB(t, dir)
	mgr := NewManager(dbPath)

	// Two backups in the same second get distinct names.
	first, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("first backup failed: %v", err)
	}
	second, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("second backup failed: %v", err)
	}
	if first == second {
		t.Errorf("expected unique backup paths, both were %s", first)
	}
}

func TestListBackups(t *testing.T) {
	dir := t.TempDir()
	dbPath := createTestDB(t, dir)
	mgr := NewManager(dbPath)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list with no backup dir: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	// A stray file in the backup directory is ignored.
	if err := os.WriteFile(filepath.Join(mgr.BackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write stray file: %v", err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size <= 0 {
		t.Errorf("expected positive backup size, got %d", backups[0].Size)
	}
}

func TestRestoreBackup(t *testing.T) {
	dir := t.TempDir()
	dbPath := createTestDB(t, dir)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Mutate the live database past the snapshot.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec("INSERT INTO habits (title) VALUES ('read')"); err != nil {
		t.Fatalf("failed to insert: %v", err)
	}
	db.Close()
	if got := countHabits(t, dbPath); got != 2 {
		t.Fatalf("expected 2 habits before restore, got %d", got)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}
	if got := countHabits(t, dbPath); got != 1 {
		t.Errorf("expected 1 habit after restore, got %d", got)
	}
}

func TestRestoreBackupRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	dbPath := createTestDB(t, dir)
	mgr := NewManager(dbPath)

	garbage := filepath.Join(dir, "garbage.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write garbage file: %v", err)
	}

	if err := mgr.RestoreBackup(garbage); err == nil {
		t.Error("expected error restoring a non-database file")
	}
	if got := countHabits(t, dbPath); got != 1 {
		t.Errorf("restore attempt damaged the database, got %d habits", got)
	}

	if err := mgr.RestoreBackup(filepath.Join(dir, "nope.db")); err == nil {
		t.Error("expected error for missing backup file")
	}
}
