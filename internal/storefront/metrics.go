package storefront

import "github.com/prometheus/client_golang/prometheus"

// Gauges expose the derived counts the presentation layer badges show.
type Gauges struct {
	CartUnits     prometheus.Gauge
	CartTotal     prometheus.Gauge
	WishlistItems prometheus.Gauge
}

func NewGauges(reg prometheus.Registerer) *Gauges {
	g := &Gauges{
		CartUnits: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_cart_units",
			Help: "Units in the cart",
		}),
		CartTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_cart_total_cents",
			Help: "Cart total in cents",
		}),
		WishlistItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "storefront_wishlist_items",
			Help: "Products in the wishlist",
		}),
	}
	reg.MustRegister(g.CartUnits, g.CartTotal, g.WishlistItems)
	return g
}
