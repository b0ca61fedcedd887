// Package slot provides durable named string slots: the key-value storage the
// storefront mirrors its collections into.
package slot

import (
	"context"
	"errors"
	"time"
)

var ErrClosed = errors.New("slot store closed")

// Store is a durable key-value slot store. Get reports ok=false for a key that
// was never written.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
	Close() error
}

const (
	pingTimeout = 1 * time.Second
	opTimeout   = 3 * time.Second
)

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
