package store

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path to a backup of the given data file with the
// given rotation number. Backups are named data.json.bak.N where N is the
// rotation number; lower numbers are more recent (.bak.1 is the newest).
func BackupPath(dataPath string, n int) string {
	return fmt.Sprintf("%s%s.%d", dataPath, BackupSuffix, n)
}

// rotateBackups shifts existing backup files to make room for a new backup.
// It renames .bak.1 -> .bak.2, .bak.2 -> .bak.3, and deletes the oldest
// .bak.3 if it exists, so that only MaxBackupCount backups are kept.
func rotateBackups(dataPath string) error {
	if err := os.Remove(BackupPath(dataPath, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		err := os.Rename(BackupPath(dataPath, i), BackupPath(dataPath, i+1))
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup creates a backup of the data document before a rewrite.
// It rotates existing backups and copies the current document to .bak.1.
// If the document doesn't exist yet, no backup is created and no error is
// returned.
func CreateBackup(dataPath string) error {
	if _, err := os.Stat(dataPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := rotateBackups(dataPath); err != nil {
		return err
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return err
	}

	return os.WriteFile(BackupPath(dataPath, 1), data, 0644)
}

// BackupInfo describes an available backup file
type BackupInfo struct {
	Number int    // The backup number (1, 2, or 3)
	Path   string // The full path to the backup file
}

// ListBackups returns available backups of the given data file sorted by
// recency. Returns an empty slice if no backups exist.
func ListBackups(dataPath string) []BackupInfo {
	var backups []BackupInfo

	for i := 1; i <= MaxBackupCount; i++ {
		backupPath := BackupPath(dataPath, i)
		if _, err := os.Stat(backupPath); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: backupPath})
		}
	}

	return backups
}

// RestoreBackup restores a backup to the main data document.
// backupNum specifies which backup to restore (1 is most recent, 3 is
// oldest). The current document is backed up first for safety.
func RestoreBackup(dataPath string, backupNum int) error {
	if backupNum < 1 || backupNum > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", backupNum, MaxBackupCount)
	}

	backupPath := BackupPath(dataPath, backupNum)
	data, err := os.ReadFile(backupPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("backup %d does not exist", backupNum)
		}
		return err
	}

	if err := CreateBackup(dataPath); err != nil {
		return err
	}

	return os.WriteFile(dataPath, data, 0644)
}
