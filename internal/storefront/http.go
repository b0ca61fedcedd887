package storefront

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"ShopSphere/internal/catalog"
	"ShopSphere/internal/collection"
	"ShopSphere/pkg/kit"
)

const readyTimeout = 1 * time.Second

// Check is a named readiness probe.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Server struct {
	Shop    *Storefront
	Feed    Recent
	Checks  []Check
	Limiter *kit.IPRateLimiter
	Log     *zap.Logger
}

// Recent is the notification feed served at /notifications.
type Recent interface {
	Recent(limit int) []collection.Notification
}

type itemReq struct {
	ProductID string `json:"product_id" validate:"required"`
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)

	r.Get("/categories", s.categories)
	r.Get("/products", s.listProducts)
	r.Get("/products/{id}", s.getProduct)

	r.Get("/cart", s.getCart)
	r.Get("/wishlist", s.getWishlist)
	r.Get("/wishlist/items/{id}", s.wishlistMember)
	r.Get("/notifications", s.notifications)

	r.Group(func(mr chi.Router) {
		if s.Limiter != nil {
			mr.Use(s.Limiter.Middleware)
		}
		mr.Post("/cart/items", s.addToCart)
		mr.Delete("/cart/items/{id}", s.removeFromCart)
		mr.Post("/cart/checkout", s.checkout)

		mr.Post("/wishlist/items", s.addToWishlist)
		mr.Delete("/wishlist/items/{id}", s.removeFromWishlist)
		mr.Post("/wishlist/items/{id}/toggle", s.toggleWishlist)
		mr.Delete("/wishlist", s.clearWishlist)
	})

	return r
}

func (s *Server) log() *zap.Logger { return kit.OrNop(s.Log) }

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	for _, c := range s.Checks {
		if err := c.Ping(ctx); err != nil {
			s.log().Warn("readyz failed", zap.String("check", c.Name), zap.Error(err))
			kit.WriteError(w, r, http.StatusServiceUnavailable, c.Name+" not ready", nil)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) categories(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, catalog.Categories())
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	c, err := criteriaFromQuery(r)
	if err != nil {
		kit.WriteValidationError(w, r, err)
		return
	}

	products, err := s.Shop.Products(r.Context(), c)
	if err != nil {
		s.log().Error("list products failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

// criteriaFromQuery starts from the storefront defaults and overrides what
// the query string sets. Prices are in cents.
func criteriaFromQuery(r *http.Request) (catalog.Criteria, error) {
	q := r.URL.Query()
	c := catalog.DefaultCriteria()

	if v := q.Get("category"); v != "" {
		c.Category = catalog.Category(v)
	}
	c.Query = q.Get("q")
	if v := q.Get("sort"); v != "" {
		c.Sort = catalog.SortKey(v)
	}

	var err error
	if v := q.Get("min"); v != "" {
		if c.MinPriceCents, err = strconv.ParseInt(v, 10, 64); err != nil {
			return c, errors.New("min must be an integer number of cents")
		}
	}
	if v := q.Get("max"); v != "" {
		if c.MaxPriceCents, err = strconv.ParseInt(v, 10, 64); err != nil {
			return c, errors.New("max must be an integer number of cents")
		}
	}

	return c, c.Validate()
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

// lookup resolves id against the catalog and writes the error response
// itself when it cannot.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request, id string) (catalog.Product, bool) {
	p, err := s.Shop.Product(r.Context(), id)
	if errors.Is(err, ErrProductNotFound) {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return catalog.Product{}, false
	}
	if err != nil {
		s.log().Error("get product failed", zap.Error(err), zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return catalog.Product{}, false
	}
	return p, true
}

func (s *Server) decodeItem(w http.ResponseWriter, r *http.Request) (catalog.Product, bool) {
	var req itemReq
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return catalog.Product{}, false
	}
	if err := kit.Validate(req); err != nil {
		kit.WriteValidationError(w, r, err)
		return catalog.Product{}, false
	}
	return s.lookup(w, r, req.ProductID)
}

func (s *Server) getCart(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Shop.Cart())
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeItem(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.Shop.AddToCart(r.Context(), p))
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Shop.RemoveFromCart(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) checkout(w http.ResponseWriter, r *http.Request) {
	if !s.Shop.Checkout(r.Context()) {
		kit.WriteError(w, r, http.StatusConflict, "cart is empty", nil)
		return
	}
	kit.WriteJSON(w, http.StatusAccepted, map[string]any{"status": "checkout started"})
}

func (s *Server) getWishlist(w http.ResponseWriter, _ *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Shop.Wishlist())
}

func (s *Server) wishlistMember(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"in_wishlist": s.Shop.IsInWishlist(chi.URLParam(r, "id")),
	})
}

func (s *Server) addToWishlist(w http.ResponseWriter, r *http.Request) {
	p, ok := s.decodeItem(w, r)
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, s.Shop.AddToWishlist(r.Context(), p))
}

func (s *Server) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Shop.RemoveFromWishlist(r.Context(), chi.URLParam(r, "id")))
}

func (s *Server) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"in_wishlist": s.Shop.ToggleWishlist(r.Context(), p),
	})
}

func (s *Server) clearWishlist(w http.ResponseWriter, r *http.Request) {
	kit.WriteJSON(w, http.StatusOK, s.Shop.ClearWishlist(r.Context()))
}

func (s *Server) notifications(w http.ResponseWriter, r *http.Request) {
	if s.Feed == nil {
		kit.WriteJSON(w, http.StatusOK, []collection.Notification{})
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			kit.WriteError(w, r, http.StatusBadRequest, "limit must be a non-negative integer", nil)
			return
		}
		limit = n
	}
	kit.WriteJSON(w, http.StatusOK, s.Feed.Recent(limit))
}
