package notify

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"ShopSphere/internal/collection"
)

type Counter struct {
	total *prometheus.CounterVec
}

func NewCounter(reg prometheus.Registerer) *Counter {
	c := &Counter{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_notifications_total",
				Help: "Notifications emitted by collection and kind",
			},
			[]string{"collection", "kind"},
		),
	}
	reg.MustRegister(c.total)
	return c
}

func (c *Counter) Notify(_ context.Context, n collection.Notification) {
	c.total.WithLabelValues(n.Collection, string(n.Kind)).Inc()
}
