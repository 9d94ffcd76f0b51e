package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/RoyalZSoftware/management-cli/internal/customer"
)

func TestRestoreFromBackup_NoBackups(t *testing.T) {
	env := setupCLITest(t)

	restoreFromBackup(nil)

	if !env.exitCalled {
		t.Error("Expected exit to be called with no backups")
	}
	if !strings.Contains(env.stdout.String(), "No backups available") {
		t.Errorf("Expected no backups message, got: %s", env.stdout.String())
	}
}

func TestRestoreFromBackup_Success(t *testing.T) {
	env := setupCLITest(t)

	// Two writes: the second one backs up the first state.
	if _, err := env.services(t).Customers.Store(customer.New("ACME Inc.", "", "")); err != nil {
		t.Fatalf("seeding customer failed: %v", err)
	}
	if _, err := env.services(t).Customers.Store(customer.New("Globex", "", "")); err != nil {
		t.Fatalf("seeding customer failed: %v", err)
	}

	restoreFromBackup(nil)

	if !strings.Contains(env.stdout.String(), "Restored data file from backup #1") {
		t.Errorf("Expected restore confirmation, got: %s", env.stdout.String())
	}

	restored, err := os.ReadFile(env.dataPath)
	if err != nil {
		t.Fatalf("reading restored data failed: %v", err)
	}
	if !strings.Contains(string(restored), "ACME Inc.") || strings.Contains(string(restored), "Globex") {
		t.Errorf("Expected the pre-Globex state, got: %s", restored)
	}
}

func TestRestoreFromBackup_InvalidNumber(t *testing.T) {
	env := setupCLITest(t)
	if _, err := env.services(t).Customers.Store(customer.New("ACME Inc.", "", "")); err != nil {
		t.Fatalf("seeding customer failed: %v", err)
	}
	if _, err := env.services(t).Customers.Store(customer.New("Globex", "", "")); err != nil {
		t.Fatalf("seeding customer failed: %v", err)
	}

	restoreFromBackup([]string{"abc"})

	if !env.exitCalled {
		t.Error("Expected exit to be called for invalid backup number")
	}
	if !strings.Contains(env.stderr.String(), `Invalid backup number "abc"`) {
		t.Errorf("Expected invalid number error, got: %s", env.stderr.String())
	}
}
