package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"ShopSphere/internal/slot"
	"ShopSphere/pkg/kit"
)

const (
	DefaultCartSlot     = "shopSphere_cart"
	DefaultWishlistSlot = "shopSphere_wishlist"
)

// Bridge mirrors collections into durable slots. Reads happen once at open;
// every mutation overwrites the whole slot. Storage failures are logged and
// never returned: the in-memory collection stays authoritative.
type Bridge struct {
	slots slot.Store
	log   *zap.Logger
}

func NewBridge(slots slot.Store, log *zap.Logger) *Bridge {
	return &Bridge{slots: slots, log: kit.OrNop(log)}
}

// restore decodes the slot into records. It returns nil for an absent,
// unreadable or invalid slot; a partially valid slot is discarded whole.
func restore[T any](ctx context.Context, b *Bridge, key string, check func([]T) error) []T {
	raw, ok, err := b.slots.Get(ctx, key)
	if err != nil {
		b.log.Warn("slot read failed, starting empty", zap.String("slot", key), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var recs []T
	if err := json.Unmarshal([]byte(raw), &recs); err != nil {
		b.log.Warn("slot corrupt, starting empty", zap.String("slot", key), zap.Error(err))
		return nil
	}
	if err := check(recs); err != nil {
		b.log.Warn("slot invalid, starting empty", zap.String("slot", key), zap.Error(err))
		return nil
	}
	return recs
}

// save overwrites the slot with recs. Cancelling ctx does not stop the write;
// the slot store bounds it with its own timeout.
func (b *Bridge) save(ctx context.Context, key string, recs any) {
	ctx = context.WithoutCancel(ctx)
	data, err := json.Marshal(recs)
	if err != nil {
		b.log.Error("encode slot failed", zap.String("slot", key), zap.Error(err))
		return
	}
	if err := b.slots.Set(ctx, key, string(data)); err != nil {
		b.log.Error("slot write failed", zap.String("slot", key), zap.Error(err))
	}
}

// uniqueIDs rejects records that repeat a product id.
func uniqueIDs[T any](recs []T, id func(T) string) error {
	seen := make(map[string]struct{}, len(recs))
	for i, r := range recs {
		k := id(r)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("record %d: duplicate product id %q", i, k)
		}
		seen[k] = struct{}{}
	}
	return nil
}
