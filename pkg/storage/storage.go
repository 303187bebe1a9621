package storage

import (
	"context"

	"github.com/soft-challenge/soft75/pkg/model"
)

// Store is the key-value persistence collaborator for the tracker. The
// engine only ever needs get and set over a handful of fixed string keys;
// no transactions, no expiry.
type Store interface {
	// Get returns the value stored under key. ok is false when the key
	// has never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any prior value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}

// Journal persists the mutation history backing the activity log.
type Journal interface {
	// Append records a single mutation.
	Append(ctx context.Context, entry *model.JournalEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]model.JournalEntry, error)
}
