package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ShopSphere/internal/storefront"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show or change the shopping cart",
	RunE: func(cmd *cobra.Command, _ []string) error {
		printCart(cmd.OutOrStdout(), shop.Shop.Cart())
		return nil
	},
}

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Show or change the wishlist",
	RunE: func(cmd *cobra.Command, _ []string) error {
		printWishlist(cmd.OutOrStdout(), shop.Shop.Wishlist())
		return nil
	},
}

func init() {
	cartCmd.AddCommand(
		&cobra.Command{
			Use:   "add <product-id>",
			Short: "Add one unit of a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := productArg(cmd, args)
				if err != nil {
					return err
				}
				shop.Shop.AddToCart(cmd.Context(), p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove one unit of a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				shop.Shop.RemoveFromCart(cmd.Context(), args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "checkout",
			Short: "Start checkout",
			RunE: func(cmd *cobra.Command, _ []string) error {
				if !shop.Shop.Checkout(cmd.Context()) {
					fmt.Fprintln(cmd.OutOrStdout(), "Your cart is empty")
				}
				return nil
			},
		},
	)

	wishlistCmd.AddCommand(
		&cobra.Command{
			Use:   "add <product-id>",
			Short: "Save a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := productArg(cmd, args)
				if err != nil {
					return err
				}
				shop.Shop.AddToWishlist(cmd.Context(), p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Forget a saved product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				shop.Shop.RemoveFromWishlist(cmd.Context(), args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <product-id>",
			Short: "Save a product, or forget it if already saved",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := productArg(cmd, args)
				if err != nil {
					return err
				}
				shop.Shop.ToggleWishlist(cmd.Context(), p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every saved product",
			RunE: func(cmd *cobra.Command, _ []string) error {
				shop.Shop.ClearWishlist(cmd.Context())
				return nil
			},
		},
	)
}

func printCart(w io.Writer, v storefront.CartView) {
	if len(v.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQTY\tLINE\t")
	for _, e := range v.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t\n", e.ID, e.Name, money(e.PriceCents), e.Quantity, money(e.LineTotalCents()))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "Items: %d  Total: %s\n", v.Count, money(v.TotalCents))
}

func printWishlist(w io.Writer, v storefront.WishlistView) {
	if len(v.Items) == 0 {
		fmt.Fprintln(w, "Your wishlist is empty")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tRATING\t")
	for _, e := range v.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.1f (%d)\t\n", e.ID, e.Name, money(e.PriceCents), e.Rating, e.Reviews)
	}
	_ = tw.Flush()

	noun := "items"
	if v.Count == 1 {
		noun = "item"
	}
	fmt.Fprintf(w, "%d %s saved\n", v.Count, noun)
}
