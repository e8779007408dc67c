// Package store provides a small persistent string key-value store used for
// the provider credential and the scheduled-post collection. A Store handle
// is injected into adapters and services explicitly; there is no ambient
// singleton.
package store

import "fmt"

// Keys in use. Each key owns its serialized representation exclusively;
// consumers operate on deserialized copies and rewrite the whole value.
const (
	// KeyCredential holds the data-provider API credential.
	KeyCredential = "rapidapi_key"
	// KeyScheduledPosts holds the JSON-serialized scheduled-post list.
	KeyScheduledPosts = "scheduled_posts"
)

// Store is a per-profile string key-value store with no TTL and no size
// limit. Get returns ok=false for a missing key; absence is a valid state.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Error represents a storage-level failure (I/O, not a missing key).
type Error struct {
	Key     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error for key %q: %s: %v", e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("store error for key %q: %s", e.Key, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
