package store

import (
	"os"
	"path/filepath"
	"testing"
)

func writeData(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
}

func readData(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

func TestCreateBackup_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	if err := CreateBackup(path); err != nil {
		t.Errorf("CreateBackup() should not fail for a missing data file: %v", err)
	}
	if backups := ListBackups(path); len(backups) != 0 {
		t.Errorf("ListBackups() returned %d backups, expected 0", len(backups))
	}
}

func TestCreateBackup_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	// Four backups of four generations; only the last three survive
	for _, generation := range []string{"one", "two", "three", "four"} {
		writeData(t, path, generation)
		if err := CreateBackup(path); err != nil {
			t.Fatalf("CreateBackup() returned unexpected error: %v", err)
		}
	}

	backups := ListBackups(path)
	if len(backups) != MaxBackupCount {
		t.Fatalf("ListBackups() returned %d backups, expected %d", len(backups), MaxBackupCount)
	}

	expected := map[int]string{1: "four", 2: "three", 3: "two"}
	for n, content := range expected {
		if got := readData(t, BackupPath(path, n)); got != content {
			t.Errorf("backup %d contains %q, expected %q", n, got, content)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	writeData(t, path, "old state")
	if err := CreateBackup(path); err != nil {
		t.Fatalf("CreateBackup() returned unexpected error: %v", err)
	}
	writeData(t, path, "new state")

	if err := RestoreBackup(path, 1); err != nil {
		t.Fatalf("RestoreBackup() returned unexpected error: %v", err)
	}
	if got := readData(t, path); got != "old state" {
		t.Errorf("restored data file contains %q, expected %q", got, "old state")
	}

	// The pre-restore state is backed up for safety
	if got := readData(t, BackupPath(path, 1)); got != "new state" {
		t.Errorf("backup 1 contains %q, expected the pre-restore state", got)
	}
}

func TestRestoreBackup_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	tests := []struct {
		name      string
		backupNum int
	}{
		{"zero", 0},
		{"negative", -1},
		{"too large", MaxBackupCount + 1},
		{"missing backup", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := RestoreBackup(path, tt.backupNum); err == nil {
				t.Errorf("RestoreBackup(%d) should fail", tt.backupNum)
			}
		})
	}
}
