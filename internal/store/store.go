package store

import "errors"

// ErrNotFound is returned when a requested entity does not exist in the store.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface.
type Store interface {
	// SaveCapture assigns the next sequence ID to c and persists it.
	SaveCapture(c *Capture) error
	GetCapture(id uint64) (*Capture, error)

	// ListCaptures returns up to limit captures, newest first.
	// A limit of zero or less returns all of them.
	ListCaptures(limit int) ([]*Capture, error)
	Count() (int, error)

	// Prune deletes the oldest captures until at most keep remain and
	// returns how many were removed.
	Prune(keep int) (int, error)

	// Close the store
	Close() error
}
