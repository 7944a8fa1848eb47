package main

import (
	"fmt"
	"storefront/internal/migrations"

	"github.com/spf13/cobra"
)

// storectl migrate
func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the collection table for SQL drivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := boot()
			if err != nil {
				return err
			}
			defer a.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "Store ready (%s)\n", a.cfg.StoreDriver)
			return nil
		},
	}
}

// storectl seed
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the starter catalog if no catalog exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := boot()
			if err != nil {
				return err
			}
			defer a.Close()
			if err := migrations.SeedCatalog(a.products, a.logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog has %d products\n", len(a.products.List()))
			return nil
		},
	}
}
