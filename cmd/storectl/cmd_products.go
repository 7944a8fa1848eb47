package main

import (
	"fmt"
	"storefront/internal/services"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Inspect the catalog",
	}

	var category, query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := boot()
			if err != nil {
				return err
			}
			defer a.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY\tUNIT")
			for _, p := range a.catalog.ListProducts(services.ProductFilter{Category: category, Query: query}) {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", p.ID, p.Name, p.Price, p.Category, p.Unit)
			}
			return w.Flush()
		},
	}
	list.Flags().StringVar(&category, "category", "", "only products in this category")
	list.Flags().StringVarP(&query, "query", "q", "", "only products whose name contains this text")

	cmd.AddCommand(list)
	return cmd
}
