package collection

import (
	"context"
	"fmt"

	"ShopSphere/internal/catalog"
	"ShopSphere/pkg/kit"
)

// WishlistEntry is a product snapshot. On the wire it is the product's fields.
type WishlistEntry struct {
	catalog.Product
}

// Wishlist is an insertion-ordered set of products. It is not safe for
// concurrent use.
type Wishlist struct {
	entries []WishlistEntry
	members map[string]struct{}
	slot    string
	bridge  *Bridge
	notify  Notifier
}

// OpenWishlist restores the wishlist from its slot, starting empty when the
// slot is absent or unusable.
func OpenWishlist(ctx context.Context, b *Bridge, slotName string, n Notifier) *Wishlist {
	w := &Wishlist{
		slot:   slotName,
		bridge: b,
		notify: orDiscard(n),
	}
	w.reset(restore(ctx, b, slotName, checkWishlist))
	return w
}

func checkWishlist(recs []WishlistEntry) error {
	if err := kit.ValidateVar(recs, "dive"); err != nil {
		return fmt.Errorf("wishlist records: %w", err)
	}
	return uniqueIDs(recs, func(e WishlistEntry) string { return e.ID })
}

func (w *Wishlist) reset(entries []WishlistEntry) {
	w.entries = entries
	w.members = make(map[string]struct{}, len(entries))
	for _, e := range entries {
		w.members[e.ID] = struct{}{}
	}
}

// Add appends p unless it is already present. It reports whether p was
// inserted; a repeated add writes nothing and stays silent.
func (w *Wishlist) Add(ctx context.Context, p catalog.Product) bool {
	if w.Contains(p.ID) {
		return false
	}
	w.entries = append(w.entries, WishlistEntry{Product: p.Clone()})
	w.members[p.ID] = struct{}{}

	w.persist(ctx)
	w.notify.Notify(ctx, NewNotification(KindSuccess, NameWishlist, p.ID, fmt.Sprintf("%s added to wishlist", p.Name)))
	return true
}

// Remove deletes id if present. The slot is rewritten either way; the
// notification only fires when something was removed.
func (w *Wishlist) Remove(ctx context.Context, id string) bool {
	var removed *WishlistEntry
	if w.Contains(id) {
		for i, e := range w.entries {
			if e.ID == id {
				removed = &e
				w.entries = append(w.entries[:i], w.entries[i+1:]...)
				break
			}
		}
		delete(w.members, id)
	}

	w.persist(ctx)
	if removed != nil {
		w.notify.Notify(ctx, NewNotification(KindInfo, NameWishlist, id, fmt.Sprintf("%s removed from wishlist", removed.Name)))
	}
	return removed != nil
}

// Toggle removes p when present and adds it otherwise. It reports whether p
// is in the wishlist afterwards.
func (w *Wishlist) Toggle(ctx context.Context, p catalog.Product) bool {
	if w.Contains(p.ID) {
		w.Remove(ctx, p.ID)
		return false
	}
	w.Add(ctx, p)
	return true
}

// Clear empties the wishlist with one write and one notification.
func (w *Wishlist) Clear(ctx context.Context) {
	w.reset(nil)
	w.persist(ctx)
	w.notify.Notify(ctx, NewNotification(KindSuccess, NameWishlist, "", "Wishlist cleared"))
}

func (w *Wishlist) Contains(id string) bool {
	_, ok := w.members[id]
	return ok
}

func (w *Wishlist) Count() int { return len(w.entries) }

func (w *Wishlist) Entries() []WishlistEntry {
	out := make([]WishlistEntry, len(w.entries))
	for i, e := range w.entries {
		out[i] = WishlistEntry{Product: e.Product.Clone()}
	}
	return out
}

func (w *Wishlist) persist(ctx context.Context) {
	entries := w.entries
	if entries == nil {
		entries = []WishlistEntry{}
	}
	w.bridge.save(ctx, w.slot, entries)
}
