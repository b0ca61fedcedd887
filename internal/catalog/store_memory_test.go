package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	products := Seed()
	require.Len(t, products, 6)

	p := products[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Wireless Bluetooth Headphones", p.Name)
	assert.Equal(t, int64(12999), p.PriceCents)
	assert.Equal(t, CategoryElectronics, p.Category)
	assert.Equal(t, []string{"Noise Cancelling", "30hr Battery", "Quick Charge"}, p.Features)
	assert.Equal(t, []string{"100% Cotton", "Machine Washable", "Classic Fit"}, products[1].Features)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("products: [this is: not: valid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog yaml")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/nope.yaml")
	assert.Error(t, err)
}

func TestMemStore_ListKeepsOrder(t *testing.T) {
	s := NewSeedStore()

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5", "p6"}, ids(got))
}

func TestMemStore_Get(t *testing.T) {
	s := NewSeedStore()

	p, ok, err := s.Get(context.Background(), "p4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Leather Laptop Bag", p.Name)

	_, ok, err = s.Get(context.Background(), "p99")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemStore_ReturnsCopies(t *testing.T) {
	s := NewSeedStore()
	ctx := context.Background()

	p, _, _ := s.Get(ctx, "p1")
	p.Features[0] = "changed"
	p.Name = "changed"

	again, _, _ := s.Get(ctx, "p1")
	assert.Equal(t, "Noise Cancelling", again.Features[0])
	assert.Equal(t, "Wireless Bluetooth Headphones", again.Name)
}

func TestNewMemStore_RejectsBadIDs(t *testing.T) {
	_, err := NewMemStore([]Product{{ID: "a"}, {ID: "a"}})
	assert.ErrorContains(t, err, "duplicate")

	_, err = NewMemStore([]Product{{Name: "nameless"}})
	assert.ErrorContains(t, err, "empty id")
}
