// Package app builds the storefront from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"ShopSphere/internal/catalog"
	"ShopSphere/internal/collection"
	"ShopSphere/internal/config"
	"ShopSphere/internal/notify"
	"ShopSphere/internal/slot"
	"ShopSphere/internal/storefront"
	"ShopSphere/pkg/kit"
)

// App owns everything built from a Config.
type App struct {
	Shop   *storefront.Storefront
	Feed   *notify.Feed
	Checks []storefront.Check

	closers []func() error
}

type Options struct {
	Log *zap.Logger
	// Registry enables slot, notification and collection metrics when set.
	Registry prometheus.Registerer
	// Notifiers are added after the built-in sinks.
	Notifiers []collection.Notifier
}

func New(ctx context.Context, cfg *config.Config, o Options) (_ *App, err error) {
	log := kit.OrNop(o.Log)
	a := &App{}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	var pool *pgxpool.Pool
	if cfg.SlotBackend == config.BackendPostgres || cfg.CatalogBackend == config.BackendPostgres {
		if pool, err = kit.OpenPostgres(ctx, cfg.PostgresDSN); err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
	}

	products, err := openCatalog(cfg, pool)
	if err != nil {
		return nil, err
	}

	slots, err := openSlots(ctx, cfg, pool)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, slots.Close)
	log.Info("slot store ready", zap.String("backend", cfg.SlotBackend))

	a.Checks = []storefront.Check{
		{Name: "catalog", Ping: products.Ping},
		{Name: "slots", Ping: slots.Ping},
	}

	var gauges *storefront.Gauges
	if o.Registry != nil {
		slots = slot.Instrument(slots, slot.NewMetrics(o.Registry))
		gauges = storefront.NewGauges(o.Registry)
	}

	a.Feed = notify.NewFeed(cfg.FeedSize)
	sinks := notify.Fanout{notify.NewLog(log), a.Feed}
	if o.Registry != nil {
		sinks = append(sinks, notify.NewCounter(o.Registry))
	}
	if len(cfg.KafkaBrokers) > 0 {
		k := notify.NewKafka(cfg.KafkaBrokers, cfg.NotificationsTopic, log)
		a.closers = append(a.closers, k.Close)
		sinks = append(sinks, k)
		log.Info("publishing notifications to kafka", zap.Strings("brokers", cfg.KafkaBrokers))
	}
	sinks = append(sinks, o.Notifiers...)

	bridge := collection.NewBridge(slots, log)
	cart := collection.OpenCart(ctx, bridge, cfg.CartSlot, sinks)
	wishlist := collection.OpenWishlist(ctx, bridge, cfg.WishlistSlot, sinks)
	log.Info("collections restored",
		zap.Int("cart_units", cart.Count()),
		zap.Int("wishlist_items", wishlist.Count()),
	)

	a.Shop = storefront.New(storefront.Options{
		Catalog:  products,
		Cart:     cart,
		Wishlist: wishlist,
		Notifier: sinks,
		Gauges:   gauges,
	})
	return a, nil
}

func openCatalog(cfg *config.Config, pool *pgxpool.Pool) (catalog.Store, error) {
	switch {
	case cfg.CatalogBackend == config.BackendPostgres:
		return catalog.NewPostgresStore(pool), nil
	case cfg.CatalogFile != "":
		products, err := catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		return catalog.NewMemStore(products)
	default:
		return catalog.NewSeedStore(), nil
	}
}

func openSlots(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (slot.Store, error) {
	switch cfg.SlotBackend {
	case config.BackendMemory:
		return slot.NewMemory(), nil
	case config.BackendSQLite:
		return slot.OpenSQLite(ctx, cfg.SQLitePath)
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		s := slot.NewRedis(rdb, cfg.RedisKeyPrefix, time.Duration(cfg.SlotTTLHours)*time.Hour)
		if err := s.Ping(ctx); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return s, nil
	case config.BackendPostgres:
		// The pool is closed by App.Close, not by the slot store.
		return slot.NewPostgres(pool, nil), nil
	default:
		return nil, fmt.Errorf("unknown slot backend %q", cfg.SlotBackend)
	}
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
