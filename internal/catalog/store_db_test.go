package catalog

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresFixture(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresStore(mock), mock
}

var dbColumns = []string{
	"id", "name", "price_cents", "original_price_cents", "category",
	"image", "rating", "reviews", "in_stock", "features",
}

func TestPostgresStore_List(t *testing.T) {
	s, mock := newPostgresFixture(t)

	rows := pgxmock.NewRows(dbColumns).
		AddRow("p1", "Headphones", int64(12999), int64(17999), "electronics", "", 4.5, 234, 15, []string{"Quick Charge"}).
		AddRow("p2", "T-Shirt", int64(2999), int64(3999), "clothing", "", 4.3, 89, 0, []string{})
	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY position").WillReturnRows(rows)

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, CategoryElectronics, got[0].Category)
	assert.Equal(t, []string{"Quick Charge"}, got[0].Features)
	assert.False(t, got[1].Available())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListError(t *testing.T) {
	s, mock := newPostgresFixture(t)

	mock.ExpectQuery("SELECT (.+) FROM products").WillReturnError(errors.New("connection refused"))

	_, err := s.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list products")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Get(t *testing.T) {
	s, mock := newPostgresFixture(t)

	rows := pgxmock.NewRows(dbColumns).
		AddRow("p3", "Watch", int64(24999), int64(29999), "electronics", "", 4.7, 156, 8, []string{"GPS"})
	mock.ExpectQuery("SELECT (.+) FROM products WHERE id =").WithArgs("p3").WillReturnRows(rows)

	p, ok, err := s.Get(context.Background(), "p3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(24999), p.PriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMissing(t *testing.T) {
	s, mock := newPostgresFixture(t)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id =").
		WithArgs("nope").
		WillReturnRows(pgxmock.NewRows(dbColumns))

	_, ok, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
