// Package storage is the durable client-local store: a string-keyed blob
// store holding the serialized cart and session snapshots. The application
// writes it best-effort after every mutation and must keep working when a
// read or write fails, so no backend is allowed to make callers crash.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key. An
// absent key means "no prior state", never an error condition for callers.
var ErrNotFound = errors.New("storage: key not found")

// Store is a minimal key/value snapshot store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Well-known snapshot keys.
const (
	KeyCart = "cart"
	KeyUser = "user"
)
