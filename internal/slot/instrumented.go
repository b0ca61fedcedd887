package slot

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultOK    = "ok"
	resultMiss  = "miss"
	resultError = "error"
)

type Metrics struct {
	Ops *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_slot_operations_total",
				Help: "Durable slot reads and writes by outcome",
			},
			[]string{"op", "slot", "result"},
		),
	}
	reg.MustRegister(m.Ops)
	return m
}

// Instrumented counts every Get and Set on the wrapped store.
type Instrumented struct {
	Store
	m *Metrics
}

func Instrument(s Store, m *Metrics) *Instrumented {
	return &Instrumented{Store: s, m: m}
}

func (s *Instrumented) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.Store.Get(ctx, key)
	result := resultOK
	switch {
	case err != nil:
		result = resultError
	case !ok:
		result = resultMiss
	}
	s.m.Ops.WithLabelValues("get", key, result).Inc()
	return v, ok, err
}

func (s *Instrumented) Set(ctx context.Context, key, value string) error {
	err := s.Store.Set(ctx, key, value)
	result := resultOK
	if err != nil {
		result = resultError
	}
	s.m.Ops.WithLabelValues("set", key, result).Inc()
	return err
}
