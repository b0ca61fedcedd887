package collection

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShopSphere/internal/slot"
)

func newCart(t *testing.T) (*Cart, *countingSlots, *recorder) {
	t.Helper()
	slots := &countingSlots{Store: slot.NewMemory()}
	rec := &recorder{}
	return OpenCart(context.Background(), NewBridge(slots, nil), DefaultCartSlot, rec), slots, rec
}

func TestCart_AddTwiceRaisesQuantity(t *testing.T) {
	c, slots, rec := newCart(t)
	ctx := context.Background()
	p1 := product(t, "p1")

	c.Add(ctx, p1)
	c.Add(ctx, p1)

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Quantity("p1"))
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, 2*p1.PriceCents, c.Total())
	assert.Equal(t, 2, slots.sets)
	assert.Equal(t, []string{
		"Wireless Bluetooth Headphones added to cart",
		"Increased Wireless Bluetooth Headphones quantity",
	}, rec.messages())
	assert.Equal(t, KindSuccess, rec.got[0].Kind)
	assert.Equal(t, NameCart, rec.got[0].Collection)
	assert.Equal(t, "p1", rec.got[0].ProductID)
}

func TestCart_KeepsInsertionOrder(t *testing.T) {
	c, _, _ := newCart(t)
	ctx := context.Background()

	for _, id := range []string{"p3", "p1", "p3", "p5"} {
		c.Add(ctx, product(t, id))
	}

	var ids []string
	for _, e := range c.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"p3", "p1", "p5"}, ids)
	assert.Equal(t, 4, c.Count())
	assert.Equal(t, int64(24999*2+12999+2499), c.Total())
}

func TestCart_RemoveDecrementsThenDrops(t *testing.T) {
	c, _, rec := newCart(t)
	ctx := context.Background()
	p2 := product(t, "p2")

	c.Add(ctx, p2)
	c.Add(ctx, p2)

	assert.True(t, c.Remove(ctx, "p2"))
	assert.Equal(t, 1, c.Quantity("p2"))

	assert.True(t, c.Remove(ctx, "p2"))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, int64(0), c.Total())

	last := rec.got[len(rec.got)-1]
	assert.Equal(t, "Removed from cart", last.Message)
	assert.Equal(t, KindInfo, last.Kind)
}

func TestCart_RemoveUnknownIsNoop(t *testing.T) {
	c, slots, rec := newCart(t)

	assert.False(t, c.Remove(context.Background(), "p1"))
	assert.Equal(t, 0, slots.sets)
	assert.Empty(t, rec.got)
}

func TestCart_SnapshotPriceIsKept(t *testing.T) {
	c, _, _ := newCart(t)
	ctx := context.Background()
	p := product(t, "p4")

	c.Add(ctx, p)
	p.PriceCents = 1
	p.Name = "renamed"
	c.Add(ctx, p)

	e := c.Entries()[0]
	assert.Equal(t, int64(8999), e.PriceCents)
	assert.Equal(t, "Leather Laptop Bag", e.Name)
	assert.Equal(t, int64(2*8999), c.Total())
}

func TestCart_WireFormat(t *testing.T) {
	c, slots, _ := newCart(t)
	ctx := context.Background()
	c.Add(ctx, product(t, "p5"))
	c.Add(ctx, product(t, "p5"))

	raw, ok, err := slots.Get(ctx, DefaultCartSlot)
	require.NoError(t, err)
	require.True(t, ok)

	var recs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "p5", recs[0]["id"])
	assert.Equal(t, "Organic Green Tea Set", recs[0]["name"])
	assert.EqualValues(t, 2499, recs[0]["price_cents"])
	assert.EqualValues(t, 2, recs[0]["quantity"])
}

func TestCart_WriteAfterLastRemoveIsEmptyList(t *testing.T) {
	c, slots, _ := newCart(t)
	ctx := context.Background()

	c.Add(ctx, product(t, "p1"))
	c.Remove(ctx, "p1")

	raw, _, err := slots.Get(ctx, DefaultCartSlot)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, raw)
}

func TestCart_EntriesAreCopies(t *testing.T) {
	c, _, _ := newCart(t)
	c.Add(context.Background(), product(t, "p1"))

	got := c.Entries()
	got[0].Quantity = 99
	got[0].Features[0] = "changed"

	assert.Equal(t, 1, c.Quantity("p1"))
	assert.Equal(t, "Noise Cancelling", c.Entries()[0].Features[0])
}

func TestCart_NilNotifier(t *testing.T) {
	c := OpenCart(context.Background(), NewBridge(slot.NewMemory(), nil), DefaultCartSlot, nil)
	assert.NotPanics(t, func() { c.Add(context.Background(), product(t, "p1")) })
}
