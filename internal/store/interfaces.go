package store

import "context"

// SessionStorer is the persistence boundary for session-scoped blobs:
// serialized carts, demo-auth records, and last-order payloads, each
// stored as an opaque value under a caller-chosen key. It is a
// convenience cache, not a record of truth; callers must tolerate
// missing or unreadable values.
type SessionStorer interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, overwriting any previous value.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
