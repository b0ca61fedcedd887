package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ShopSphere/internal/app"
	"ShopSphere/internal/config"
	"ShopSphere/internal/storefront"
	"ShopSphere/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a, err := app.New(ctx, cfg, app.Options{Log: log, Registry: reg})
	if err != nil {
		log.Fatal("init storefront failed", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	if cfg.MetricsEnabled && cfg.MetricsToken == "" {
		log.Warn("METRICS_TOKEN is empty, /metrics will refuse every scrape")
	}

	s := &storefront.Server{
		Shop:    a.Shop,
		Feed:    a.Feed,
		Checks:  a.Checks,
		Limiter: kit.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Log:     log,
	}
	h := storefront.NewHandler(s, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(ctx, fmt.Sprintf(":%d", cfg.HTTPPort), h, log); err != nil {
		log.Error("http server stopped", zap.Error(err))
	}
}
