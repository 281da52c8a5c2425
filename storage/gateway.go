// Package storage holds the key-value document store the service state is
// persisted to. Each key holds one whole JSON-encoded collection.
package storage

import (
	"context"
	"errors"
)

// Collection keys.
const (
	KeyCustomers = "customers"
	KeyInventory = "inventory"
	KeyServices  = "services"
)

var (
	// ErrNotFound is returned by Load for a key that was never saved.
	ErrNotFound = errors.New("storage: document not found")
	// ErrLocked is returned when another writer holds the store lock.
	ErrLocked = errors.New("storage: store is locked by another writer")
)

type Document struct {
	Key  string
	Data []byte
}

// Gateway loads and saves documents. Save commits all given documents or
// none of them.
type Gateway interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, docs ...Document) error
}
