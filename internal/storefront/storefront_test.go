package storefront_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShopSphere/internal/catalog"
	"ShopSphere/internal/collection"
	"ShopSphere/internal/notify"
	"ShopSphere/internal/slot"
	"ShopSphere/internal/storefront"
)

type fixture struct {
	shop  *storefront.Storefront
	slots *slot.Memory
	feed  *notify.Feed
}

func newFixture(t *testing.T, slots *slot.Memory, gauges *storefront.Gauges) fixture {
	t.Helper()
	ctx := context.Background()
	if slots == nil {
		slots = slot.NewMemory()
	}
	feed := notify.NewFeed(20)
	b := collection.NewBridge(slots, nil)

	shop := storefront.New(storefront.Options{
		Catalog:  catalog.NewSeedStore(),
		Cart:     collection.OpenCart(ctx, b, collection.DefaultCartSlot, feed),
		Wishlist: collection.OpenWishlist(ctx, b, collection.DefaultWishlistSlot, feed),
		Notifier: feed,
		Gauges:   gauges,
	})
	return fixture{shop: shop, slots: slots, feed: feed}
}

func mustProduct(t *testing.T, s *storefront.Storefront, id string) catalog.Product {
	t.Helper()
	p, err := s.Product(context.Background(), id)
	require.NoError(t, err)
	return p
}

func TestStorefront_ProductsDerivesView(t *testing.T) {
	f := newFixture(t, nil, nil)

	c := catalog.DefaultCriteria()
	c.Category = catalog.CategoryElectronics
	c.Sort = catalog.SortPriceHigh

	got, err := f.shop.Products(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p3", got[0].ID)
	assert.Equal(t, "p1", got[1].ID)
}

func TestStorefront_ProductNotFound(t *testing.T) {
	f := newFixture(t, nil, nil)

	_, err := f.shop.Product(context.Background(), "p42")
	assert.True(t, errors.Is(err, storefront.ErrProductNotFound))
}

func TestStorefront_CartFlow(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()
	p1 := mustProduct(t, f.shop, "p1")
	p2 := mustProduct(t, f.shop, "p2")

	f.shop.AddToCart(ctx, p1)
	f.shop.AddToCart(ctx, p1)
	view := f.shop.AddToCart(ctx, p2)

	assert.Equal(t, 3, view.Count)
	assert.Equal(t, int64(2*12999+2999), view.TotalCents)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, view.Count, f.shop.CartCount())
	assert.Equal(t, view.TotalCents, f.shop.CartTotal())

	view = f.shop.RemoveFromCart(ctx, "p1")
	assert.Equal(t, 2, view.Count)

	view = f.shop.RemoveFromCart(ctx, "nope")
	assert.Equal(t, 2, view.Count)
}

func TestStorefront_WishlistFlow(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()
	p3 := mustProduct(t, f.shop, "p3")

	assert.Equal(t, 1, f.shop.AddToWishlist(ctx, p3).Count)
	assert.Equal(t, 1, f.shop.AddToWishlist(ctx, p3).Count)
	assert.True(t, f.shop.IsInWishlist("p3"))

	assert.False(t, f.shop.ToggleWishlist(ctx, p3))
	assert.Equal(t, 0, f.shop.WishlistCount())
	assert.True(t, f.shop.ToggleWishlist(ctx, p3))

	f.shop.AddToWishlist(ctx, mustProduct(t, f.shop, "p5"))
	assert.Equal(t, 1, f.shop.RemoveFromWishlist(ctx, "p3").Count)

	view := f.shop.ClearWishlist(ctx)
	assert.Equal(t, 0, view.Count)
	assert.Empty(t, view.Items)
}

func TestStorefront_Checkout(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()

	assert.False(t, f.shop.Checkout(ctx), "empty cart")
	assert.Empty(t, f.feed.Recent(0))

	f.shop.AddToCart(ctx, mustProduct(t, f.shop, "p4"))
	assert.True(t, f.shop.Checkout(ctx))

	latest := f.feed.Recent(1)
	require.Len(t, latest, 1)
	assert.Equal(t, "Proceeding to checkout...", latest[0].Message)
	assert.Equal(t, collection.KindSuccess, latest[0].Kind)
	assert.Equal(t, 1, f.shop.CartCount(), "checkout leaves the cart alone")
}

func TestStorefront_RestoresFromSlots(t *testing.T) {
	slots := slot.NewMemory()
	ctx := context.Background()

	first := newFixture(t, slots, nil)
	first.shop.AddToCart(ctx, mustProduct(t, first.shop, "p6"))
	first.shop.AddToCart(ctx, mustProduct(t, first.shop, "p6"))
	first.shop.AddToWishlist(ctx, mustProduct(t, first.shop, "p2"))

	second := newFixture(t, slots, nil)
	assert.Equal(t, first.shop.Cart(), second.shop.Cart())
	assert.Equal(t, first.shop.Wishlist(), second.shop.Wishlist())
}

func TestStorefront_Gauges(t *testing.T) {
	g := storefront.NewGauges(prometheus.NewRegistry())
	f := newFixture(t, nil, g)
	ctx := context.Background()

	f.shop.AddToCart(ctx, mustProduct(t, f.shop, "p5"))
	f.shop.AddToCart(ctx, mustProduct(t, f.shop, "p5"))
	f.shop.AddToWishlist(ctx, mustProduct(t, f.shop, "p1"))

	assert.Equal(t, 2.0, testutil.ToFloat64(g.CartUnits))
	assert.Equal(t, 4998.0, testutil.ToFloat64(g.CartTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.WishlistItems))
}

func TestStorefront_ConcurrentActions(t *testing.T) {
	f := newFixture(t, nil, nil)
	ctx := context.Background()
	p := mustProduct(t, f.shop, "p2")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.shop.AddToCart(ctx, p)
			f.shop.ToggleWishlist(ctx, p)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, f.shop.CartCount())
	assert.Equal(t, int64(20*2999), f.shop.CartTotal())
	assert.False(t, f.shop.IsInWishlist("p2"), "an even number of toggles")
}
