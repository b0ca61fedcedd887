// Command shopctl is a terminal storefront. Cart and wishlist live in a
// local slot database, so they survive between runs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ShopSphere/internal/app"
	"ShopSphere/internal/collection"
	"ShopSphere/internal/config"
	"ShopSphere/internal/notify"
	"ShopSphere/pkg/kit"
)

var (
	dbPath   string
	backend  string
	logLevel string

	shop *app.App
	log  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "shopctl",
	Short:         "Browse the catalog and manage your cart and wishlist",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("db") {
			cfg.SQLitePath = dbPath
		}
		if cmd.Flags().Changed("backend") {
			cfg.SlotBackend = backend
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		log = kit.NewLogger("shopctl", logLevel)
		shop, err = app.New(cmd.Context(), cfg, app.Options{
			Log:       log,
			Notifiers: []collection.Notifier{notify.Writer{W: cmd.OutOrStdout()}},
		})
		return err
	},
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if log != nil {
			_ = log.Sync()
		}
		if shop == nil {
			return nil
		}
		return shop.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "shopsphere.db", "slot database file (sqlite backend)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", config.BackendSQLite, "slot backend: memory, sqlite, redis or postgres")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level written to stderr")

	rootCmd.AddCommand(productsCmd, categoriesCmd, cartCmd, wishlistCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
