// Package store holds the persistence providers the bookmark collection is
// written through to. Every provider stores opaque string blobs in named
// slots; the bookmark store owns the encoding.
package store

import "context"

// Provider is a synchronous key-value slot store.
type Provider interface {
	// Get returns the value held in key. ok is false when the slot has never
	// been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the whole value of key.
	Set(ctx context.Context, key, value string) error

	Close() error
}
