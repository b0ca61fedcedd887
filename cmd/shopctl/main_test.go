package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute(), out.String())
	shop = nil
	return out.String()
}

func TestShopctl_CollectionsPersistBetweenRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "shop.db")

	assert.Equal(t, "[✓] Leather Laptop Bag added to cart\n", run(t, "--db", db, "cart", "add", "p4"))
	assert.Equal(t, "[✓] Increased Leather Laptop Bag quantity\n", run(t, "--db", db, "cart", "add", "p4"))
	assert.Equal(t, "[✓] Leather Laptop Bag added to wishlist\n", run(t, "--db", db, "wishlist", "add", "p4"))

	out := run(t, "--db", db, "cart")
	assert.Contains(t, out, "Leather Laptop Bag")
	assert.Contains(t, out, "Items: 2  Total: $179.98")

	assert.Contains(t, run(t, "--db", db, "wishlist"), "1 item saved")
	assert.Equal(t, "[✓] Proceeding to checkout...\n", run(t, "--db", db, "cart", "checkout"))

	assert.Equal(t, "[✓] Wishlist cleared\n", run(t, "--db", db, "wishlist", "clear"))
	assert.Equal(t, "Your wishlist is empty\n", run(t, "--db", db, "wishlist"))
}

func TestShopctl_Products(t *testing.T) {
	db := filepath.Join(t.TempDir(), "shop.db")

	out := run(t, "--db", db, "products", "-c", "electronics", "-s", "price-high")
	assert.Contains(t, out, "Smart Fitness Watch")
	assert.Contains(t, out, "$249.99")
	assert.NotContains(t, out, "Premium Cotton T-Shirt")

	out = run(t, "--db", db, "products", "-c", "all", "-s", "featured", "-q", "nothing-matches")
	assert.Equal(t, "No products found\n", out)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$0.00", money(0))
	assert.Equal(t, "$129.99", money(12999))
	assert.Equal(t, "$1.05", money(105))
	assert.Equal(t, "-$0.50", money(-50))
}
