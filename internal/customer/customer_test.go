package customer

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/RoyalZSoftware/management-cli/internal/store"
)

func tempRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(store.New(filepath.Join(t.TempDir(), "data.json")))
}

func storeCustomer(t *testing.T, r *Registry, name, email, address string) *Customer {
	t.Helper()
	stored, err := r.Store(New(name, email, address))
	if err != nil {
		t.Fatalf("Store() returned unexpected error: %v", err)
	}
	return stored
}

func TestStore_AssignsID(t *testing.T) {
	r := tempRegistry(t)

	first := storeCustomer(t, r, "ACME Inc.", "billing@acme.test", "Industriestrasse 48")
	second := storeCustomer(t, r, "Globex", "mail@globex.test", "Main Street 1")

	if first.ID == "" || second.ID == "" {
		t.Fatal("Store() should assign an id")
	}
	if first.ID == second.ID {
		t.Errorf("Store() assigned the same id twice: %s", first.ID)
	}
}

func TestSearch(t *testing.T) {
	r := tempRegistry(t)
	storeCustomer(t, r, "ACME Inc.", "billing@acme.test", "Industriestrasse 48, Groebenzell")
	storeCustomer(t, r, "Globex", "mail@globex.test", "Main Street 1, Springfield")

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty query returns all", "", []string{"ACME Inc.", "Globex"}},
		{"match on name", "acme", []string{"ACME Inc."}},
		{"match on name case-insensitive", "GLOBEX", []string{"Globex"}},
		{"match on email", "billing@", []string{"ACME Inc."}},
		{"match on address", "springfield", []string{"Globex"}},
		{"match across several", "test", []string{"ACME Inc.", "Globex"}},
		{"no match", "initech", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := r.Search(tt.query)
			if len(matches) != len(tt.expected) {
				t.Fatalf("Search(%q) returned %d customers, expected %d", tt.query, len(matches), len(tt.expected))
			}
			for i, name := range tt.expected {
				if matches[i].Name != name {
					t.Errorf("Search(%q)[%d] = %q, expected %q", tt.query, i, matches[i].Name, name)
				}
			}
		})
	}
}

func TestGet(t *testing.T) {
	r := tempRegistry(t)
	stored := storeCustomer(t, r, "ACME Inc.", "billing@acme.test", "Industriestrasse 48")

	found, err := r.Get(stored.ID)
	if err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if found.Name != "ACME Inc." {
		t.Errorf("Get() returned %q, expected %q", found.Name, "ACME Inc.")
	}

	if _, err := r.Get("unknown"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(unknown) = %v, expected ErrNotFound", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	first := NewRegistry(store.New(path))
	stored, err := first.Store(New("ACME Inc.", "billing@acme.test", "Industriestrasse 48"))
	if err != nil {
		t.Fatalf("Store() returned unexpected error: %v", err)
	}

	second := NewRegistry(store.New(path))
	if err := second.Load(); err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	loaded, err := second.Get(stored.ID)
	if err != nil {
		t.Fatalf("Get() after Load() returned unexpected error: %v", err)
	}
	if loaded.Name != stored.Name || loaded.Email != stored.Email || loaded.Address != stored.Address {
		t.Errorf("loaded customer %+v does not match stored %+v", loaded, stored)
	}
	if !loaded.CreatedAt.Equal(stored.CreatedAt) {
		t.Errorf("loaded CreatedAt %v does not match stored %v", loaded.CreatedAt, stored.CreatedAt)
	}
}

func TestLoad_MissingCollection(t *testing.T) {
	r := tempRegistry(t)

	if err := r.Load(); err != nil {
		t.Fatalf("Load() returned unexpected error for missing collection: %v", err)
	}
	if len(r.All()) != 0 {
		t.Errorf("Load() populated %d customers, expected 0", len(r.All()))
	}
}
