package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ShopSphere/internal/catalog"
)

var criteria = catalog.DefaultCriteria()

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products matching the filters",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := criteria.Validate(); err != nil {
			return err
		}
		products, err := shop.Shop.Products(cmd.Context(), criteria)
		if err != nil {
			return err
		}
		printProducts(cmd.OutOrStdout(), products, shop.Shop.IsInWishlist)
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List product categories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, c := range catalog.Categories() {
			fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
		}
		return tw.Flush()
	},
}

func init() {
	f := productsCmd.Flags()
	f.StringVarP((*string)(&criteria.Category), "category", "c", string(catalog.CategoryAll), "category id, or all")
	f.StringVarP(&criteria.Query, "query", "q", "", "case-insensitive name search")
	f.Int64Var(&criteria.MinPriceCents, "min", 0, "minimum price in cents")
	f.Int64Var(&criteria.MaxPriceCents, "max", catalog.DefaultMaxPriceCents, "maximum price in cents")
	f.StringVarP((*string)(&criteria.Sort), "sort", "s", string(catalog.SortFeatured), "featured, price-low, price-high, rating or name")
}

func printProducts(w io.Writer, products []catalog.Product, saved func(string) bool) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tWAS\tOFF\tRATING\tSTOCK\t")
	for _, p := range products {
		name := p.Name
		if saved(p.ID) {
			name += " ♥"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\t%.1f (%d)\t%s\t\n",
			p.ID, name, money(p.PriceCents), money(p.OriginalPriceCents),
			p.DiscountPercent(), p.Rating, p.Reviews, stock(p))
	}
	_ = tw.Flush()
}

func stock(p catalog.Product) string {
	if !p.Available() {
		return "Out of stock"
	}
	return fmt.Sprintf("%d left", p.InStock)
}

func money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign, cents = "-", -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func productArg(cmd *cobra.Command, args []string) (catalog.Product, error) {
	return shop.Shop.Product(cmd.Context(), strings.TrimSpace(args[0]))
}
