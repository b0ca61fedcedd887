package collection

import (
	"context"
	"fmt"

	"ShopSphere/internal/catalog"
	"ShopSphere/pkg/kit"
)

// CartEntry is a product snapshot plus a quantity. On the wire it is the
// product's fields with an extra "quantity" key.
type CartEntry struct {
	catalog.Product
	Quantity int `json:"quantity" validate:"min=1"`
}

// LineTotalCents is the snapshot price times the quantity.
func (e CartEntry) LineTotalCents() int64 {
	return e.PriceCents * int64(e.Quantity)
}

// Cart is an insertion-ordered cart keyed by product id. It is not safe for
// concurrent use.
type Cart struct {
	entries []CartEntry
	index   map[string]int
	slot    string
	bridge  *Bridge
	notify  Notifier
}

// OpenCart restores the cart from its slot, starting empty when the slot is
// absent or unusable.
func OpenCart(ctx context.Context, b *Bridge, slotName string, n Notifier) *Cart {
	c := &Cart{
		slot:   slotName,
		bridge: b,
		notify: orDiscard(n),
	}
	c.reset(restore(ctx, b, slotName, checkCart))
	return c
}

func checkCart(recs []CartEntry) error {
	if err := kit.ValidateVar(recs, "dive"); err != nil {
		return fmt.Errorf("cart records: %w", err)
	}
	return uniqueIDs(recs, func(e CartEntry) string { return e.ID })
}

func (c *Cart) reset(entries []CartEntry) {
	c.entries = entries
	c.reindex()
}

func (c *Cart) reindex() {
	c.index = make(map[string]int, len(c.entries))
	for i, e := range c.entries {
		c.index[e.ID] = i
	}
}

// Add puts one unit of p in the cart. A new product is appended with
// quantity 1; an existing one has its quantity raised and keeps its stored
// price.
func (c *Cart) Add(ctx context.Context, p catalog.Product) {
	var n Notification
	if i, ok := c.index[p.ID]; ok {
		c.entries[i].Quantity++
		n = NewNotification(KindSuccess, NameCart, p.ID, fmt.Sprintf("Increased %s quantity", p.Name))
	} else {
		c.index[p.ID] = len(c.entries)
		c.entries = append(c.entries, CartEntry{Product: p.Clone(), Quantity: 1})
		n = NewNotification(KindSuccess, NameCart, p.ID, fmt.Sprintf("%s added to cart", p.Name))
	}
	c.persist(ctx)
	c.notify.Notify(ctx, n)
}

// Remove takes one unit of id out of the cart, dropping the entry when its
// quantity reaches zero. Unknown ids are ignored. It reports whether the
// cart changed.
func (c *Cart) Remove(ctx context.Context, id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}

	if c.entries[i].Quantity > 1 {
		c.entries[i].Quantity--
	} else {
		c.entries = append(c.entries[:i], c.entries[i+1:]...)
		c.reindex()
	}
	c.persist(ctx)
	c.notify.Notify(ctx, NewNotification(KindInfo, NameCart, id, "Removed from cart"))
	return true
}

// Total sums price*quantity over the stored snapshots, in cents.
func (c *Cart) Total() int64 {
	var total int64
	for _, e := range c.entries {
		total += e.LineTotalCents()
	}
	return total
}

// Count is the number of units in the cart, not the number of entries.
func (c *Cart) Count() int {
	n := 0
	for _, e := range c.entries {
		n += e.Quantity
	}
	return n
}

// Len is the number of distinct products in the cart.
func (c *Cart) Len() int { return len(c.entries) }

// Quantity reports how many units of id are in the cart, 0 if none.
func (c *Cart) Quantity(id string) int {
	if i, ok := c.index[id]; ok {
		return c.entries[i].Quantity
	}
	return 0
}

// Entries returns a copy of the cart in insertion order.
func (c *Cart) Entries() []CartEntry {
	out := make([]CartEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = CartEntry{Product: e.Product.Clone(), Quantity: e.Quantity}
	}
	return out
}

func (c *Cart) persist(ctx context.Context) {
	c.bridge.save(ctx, c.slot, c.entries)
}
