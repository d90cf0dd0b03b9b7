package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jask/shopfront/internal/catalog"
)

func (a *app) newSearchCmd() *cobra.Command {
	var (
		title       string
		description string
		minPrice    int
		maxPrice    int
		categoryID  string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Query the catalog without the interface",
		Long: `Search sends the same query the filter panel would. Fields left empty are
not sent; with no fields at all the full listing is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			src, closeSource, err := openSource(ctx, a.cfg, a.logger)
			if err != nil {
				return err
			}
			defer closeSource()

			for _, v := range []int{minPrice, maxPrice} {
				if v < catalog.PriceFloor || v > catalog.PriceCeil || v%catalog.PriceStep != 0 {
					return fmt.Errorf("price %d is not on the %d..%d grid of step %d", v, catalog.PriceFloor, catalog.PriceCeil, catalog.PriceStep)
				}
			}
			if minPrice != 0 && maxPrice != 0 && minPrice > maxPrice {
				return fmt.Errorf("min %d is above max %d", minPrice, maxPrice)
			}
			c := catalog.NewCriteria(title, description, minPrice, maxPrice)
			var products []catalog.Product
			switch {
			case categoryID != "":
				products, err = src.ProductsByCategory(ctx, categoryID)
				if err == nil && !c.IsEmpty() {
					products = catalog.Filter(products, c)
				}
			case c.IsEmpty():
				products, err = src.FetchAllProducts(ctx)
			default:
				products, err = src.Search(ctx, c)
			}
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s%.2f\t%s\n", p.Title, a.cfg.UI.CurrencySymbol, p.Price, p.Description)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d products\n", len(products))
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "title contains (typos tolerated)")
	cmd.Flags().StringVar(&description, "description", "", "description contains")
	cmd.Flags().IntVar(&minPrice, "min", 0, "minimum price, a multiple of 10")
	cmd.Flags().IntVar(&maxPrice, "max", 0, "maximum price, a multiple of 10")
	cmd.Flags().StringVar(&categoryID, "category", "", "restrict to one category id")
	return cmd
}
