// Package ident generates the opaque identifiers assigned to persisted records.
package ident

import "github.com/google/uuid"

// New returns a fresh opaque identifier.
// Identifiers are unique across the persisted history; no ordering is implied.
func New() string {
	return uuid.NewString()
}
