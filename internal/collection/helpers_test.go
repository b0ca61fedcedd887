package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"ShopSphere/internal/catalog"
	"ShopSphere/internal/slot"
)

type recorder struct {
	got []Notification
}

func (r *recorder) Notify(_ context.Context, n Notification) { r.got = append(r.got, n) }

func (r *recorder) messages() []string {
	out := make([]string, len(r.got))
	for i, n := range r.got {
		out[i] = n.Message
	}
	return out
}

// countingSlots wraps a store and counts writes.
type countingSlots struct {
	slot.Store
	sets int
}

func (s *countingSlots) Set(ctx context.Context, key, value string) error {
	s.sets++
	return s.Store.Set(ctx, key, value)
}

// brokenSlots fails every operation.
type brokenSlots struct{}

var errBroken = errors.New("storage unavailable")

func (brokenSlots) Get(context.Context, string) (string, bool, error) { return "", false, errBroken }
func (brokenSlots) Set(context.Context, string, string) error         { return errBroken }
func (brokenSlots) Ping(context.Context) error                         { return errBroken }
func (brokenSlots) Close() error                                       { return nil }

func product(t *testing.T, id string) catalog.Product {
	t.Helper()
	for _, p := range catalog.Seed() {
		if p.ID == id {
			return p
		}
	}
	require.FailNow(t, "unknown product", id)
	return catalog.Product{}
}
