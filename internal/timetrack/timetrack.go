// Package timetrack holds the time tracking ledger.
//
// At most one entry across the whole ledger may be open (no end timestamp)
// at any time; that entry is the active one.
package timetrack

import (
	"errors"
	"time"

	"github.com/RoyalZSoftware/management-cli/internal/ident"
	"github.com/RoyalZSoftware/management-cli/internal/store"
)

// Collection is the name of the time tracking collection in the data document.
const Collection = "timeTrackingEntries"

// Time tracking errors
var (
	ErrAlreadyRunning = errors.New("time tracking is already running")
	ErrNotRunning     = errors.New("no time tracking is running")
)

// Entry represents a single time tracking entry.
// An entry without an end timestamp is still running.
type Entry struct {
	ID          string     `json:"id,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	Description string     `json:"description"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end,omitempty"`
}

// Duration returns the tracked duration of the entry.
// For a running entry the duration is measured up to now.
func (e *Entry) Duration() time.Duration {
	if e.End == nil {
		return time.Since(e.Start)
	}
	return e.End.Sub(e.Start)
}

// Ledger is the in-memory sequence of time tracking entries.
type Ledger struct {
	store   *store.Store
	entries []*Entry
	active  *Entry
}

// NewLedger creates an empty ledger backed by the given store.
func NewLedger(st *store.Store) *Ledger {
	return &Ledger{store: st}
}

// Load populates the ledger from the data document. If the last loaded
// entry has no end timestamp it becomes the active entry.
func (l *Ledger) Load() error {
	var loaded []*Entry
	ok, err := l.store.Load(Collection, &loaded)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	l.entries = append(l.entries, loaded...)

	if last := l.last(); last != nil && last.End == nil {
		l.active = last
	}
	return nil
}

func (l *Ledger) last() *Entry {
	if len(l.entries) == 0 {
		return nil
	}
	return l.entries[len(l.entries)-1]
}

// Entries returns all entries in storage order.
func (l *Ledger) Entries() []*Entry {
	return l.entries
}

// Active returns the currently running entry, or nil.
func (l *Ledger) Active() *Entry {
	return l.active
}

// Start begins tracking a new entry and persists it immediately.
// Fails with ErrAlreadyRunning if an entry is already active.
func (l *Ledger) Start(description string) (*Entry, error) {
	if l.active != nil {
		return nil, ErrAlreadyRunning
	}

	now := time.Now()
	entry := &Entry{
		ID:          ident.New(),
		CreatedAt:   now,
		Description: description,
		Start:       now,
	}

	l.entries = append(l.entries, entry)
	if err := l.store.Save(Collection, l.entries); err != nil {
		return nil, err
	}

	l.active = entry
	return entry, nil
}

// Stop closes the active entry, persists the whole collection and clears
// the active pointer. Fails with ErrNotRunning if nothing is being tracked.
func (l *Ledger) Stop() (*Entry, error) {
	if l.active == nil {
		return nil, ErrNotRunning
	}

	now := time.Now()
	l.active.End = &now

	if err := l.store.Save(Collection, l.entries); err != nil {
		return nil, err
	}

	stopped := l.active
	l.active = nil
	return stopped, nil
}
