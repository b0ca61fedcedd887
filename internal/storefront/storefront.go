package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ShopSphere/internal/catalog"
	"ShopSphere/internal/collection"
)

var ErrProductNotFound = errors.New("product not found")

// Storefront is the single handle presentation layers hold. Each action
// runs to completion (mutate, persist, notify) under one lock.
type Storefront struct {
	mu       sync.Mutex
	catalog  catalog.Store
	cart     *collection.Cart
	wishlist *collection.Wishlist
	notify   collection.Notifier
	gauges   *Gauges
}

type Options struct {
	Catalog  catalog.Store
	Cart     *collection.Cart
	Wishlist *collection.Wishlist
	// Notifier receives notifications not tied to a collection mutation,
	// such as checkout.
	Notifier collection.Notifier
	Gauges   *Gauges
}

func New(o Options) *Storefront {
	s := &Storefront{
		catalog:  o.Catalog,
		cart:     o.Cart,
		wishlist: o.Wishlist,
		notify:   o.Notifier,
		gauges:   o.Gauges,
	}
	s.observe()
	return s
}

func (s *Storefront) Ping(ctx context.Context) error {
	return s.catalog.Ping(ctx)
}

// Products derives the product list shown for c.
func (s *Storefront) Products(ctx context.Context, c catalog.Criteria) ([]catalog.Product, error) {
	all, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Derive(all, c), nil
}

func (s *Storefront) Product(ctx context.Context, id string) (catalog.Product, error) {
	p, ok, err := s.catalog.Get(ctx, id)
	if err != nil {
		return catalog.Product{}, err
	}
	if !ok {
		return catalog.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	return p, nil
}

func (s *Storefront) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Storefront) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

func (s *Storefront) WishlistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Count()
}

func (s *Storefront) IsInWishlist(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(id)
}

type CartView struct {
	Items      []collection.CartEntry `json:"items"`
	Count      int                    `json:"count"`
	TotalCents int64                  `json:"total_cents"`
}

func (s *Storefront) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartView()
}

func (s *Storefront) cartView() CartView {
	return CartView{
		Items:      s.cart.Entries(),
		Count:      s.cart.Count(),
		TotalCents: s.cart.Total(),
	}
}

type WishlistView struct {
	Items []collection.WishlistEntry `json:"items"`
	Count int                        `json:"count"`
}

func (s *Storefront) Wishlist() WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlistView()
}

func (s *Storefront) wishlistView() WishlistView {
	return WishlistView{
		Items: s.wishlist.Entries(),
		Count: s.wishlist.Count(),
	}
}

func (s *Storefront) AddToCart(ctx context.Context, p catalog.Product) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Add(ctx, p)
	s.observe()
	return s.cartView()
}

func (s *Storefront) RemoveFromCart(ctx context.Context, id string) CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Remove(ctx, id) {
		s.observe()
	}
	return s.cartView()
}

func (s *Storefront) AddToWishlist(ctx context.Context, p catalog.Product) WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wishlist.Add(ctx, p) {
		s.observe()
	}
	return s.wishlistView()
}

func (s *Storefront) RemoveFromWishlist(ctx context.Context, id string) WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wishlist.Remove(ctx, id) {
		s.observe()
	}
	return s.wishlistView()
}

// ToggleWishlist flips membership of p and reports whether it is now in
// the wishlist.
func (s *Storefront) ToggleWishlist(ctx context.Context, p catalog.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	in := s.wishlist.Toggle(ctx, p)
	s.observe()
	return in
}

func (s *Storefront) ClearWishlist(ctx context.Context) WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.wishlist.Clear(ctx)
	s.observe()
	return s.wishlistView()
}

// Checkout is simulated: a non-empty cart yields a notification and stays
// as it is. It reports whether checkout started.
func (s *Storefront) Checkout(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.Len() == 0 {
		return false
	}
	if s.notify != nil {
		s.notify.Notify(ctx, collection.NewNotification(collection.KindSuccess, collection.NameCart, "", "Proceeding to checkout..."))
	}
	return true
}

func (s *Storefront) observe() {
	if s.gauges == nil {
		return
	}
	s.gauges.CartUnits.Set(float64(s.cart.Count()))
	s.gauges.CartTotal.Set(float64(s.cart.Total()))
	s.gauges.WishlistItems.Set(float64(s.wishlist.Count()))
}
