package slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ShopSphere/pkg/kit"
)

// Postgres keeps slots in the storefront_slots table:
//
//	CREATE TABLE storefront_slots (
//		key        TEXT PRIMARY KEY,
//		value      TEXT NOT NULL,
//		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type Postgres struct {
	db    kit.PgxPool
	close func()
}

// NewPostgres wraps db. closeFn, if non-nil, runs on Close.
func NewPostgres(db kit.PgxPool, closeFn func()) *Postgres {
	return &Postgres{db: db, close: closeFn}
}

func (s *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := withTimeout(ctx, opTimeout, func(ctx context.Context) error {
		return s.db.QueryRow(ctx, `SELECT value FROM storefront_slots WHERE key = $1`, key).Scan(&v)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("postgres get slot %s: %w", key, err)
	}
	return v, true, nil
}

func (s *Postgres) Set(ctx context.Context, key, value string) error {
	err := withTimeout(ctx, opTimeout, func(ctx context.Context) error {
		_, err := s.db.Exec(ctx, `
			INSERT INTO storefront_slots (key, value, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
		`, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("postgres set slot %s: %w", key, err)
	}
	return nil
}

func (s *Postgres) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.Ping(ctx)
	})
}

func (s *Postgres) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
