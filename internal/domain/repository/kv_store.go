// Package repository defines the persistence ports consumed by the usecases.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned by Store.Get when the key has no value.
var ErrKeyNotFound = errors.New("key not found")

// Store is the raw key-value persistence port. Values are JSON documents;
// the typed repositories below own serialization. Implementations live in
// internal/infra/persistence/kv (Redis, PostgreSQL, in-memory).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
