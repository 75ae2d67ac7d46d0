package ports

import "context"

// SessionStore is the key-value medium holding one browser's session entries.
type SessionStore interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// SessionStoreFactory scopes the shared backend to one browser session.
type SessionStoreFactory interface {
	ForSession(sessionID string) SessionStore
	// Clear drops every entry of a browser session.
	Clear(ctx context.Context, sessionID string) error
}
