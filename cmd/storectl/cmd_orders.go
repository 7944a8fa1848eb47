package main

import (
	"errors"
	"fmt"
	"storefront/internal/models"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var errOrderNotFound = errors.New("order not found")

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and update orders",
	}
	cmd.AddCommand(ordersListCmd(), ordersShowCmd(), ordersStatusCmd())
	return cmd
}

// storectl orders list
func ordersListCmd() *cobra.Command {
	var pendingOnly bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := boot()
			if err != nil {
				return err
			}
			defer a.Close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCUSTOMER\tTOTAL\tSTATUS\tCREATED")
			for _, o := range a.orders.ListOrders() {
				if pendingOnly && o.Status != models.OrderPending {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", o.ID, o.CustomerName, o.TotalAmount, o.Status, o.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&pendingOnly, "pending", false, "only pending orders")
	return cmd
}

// storectl orders show <id>
func ordersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one order with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := boot()
			if err != nil {
				return err
			}
			defer a.Close()

			order, ok := a.orders.GetOrder(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", errOrderNotFound, args[0])
			}
			printOrder(cmd, order)
			return nil
		},
	}
}

// storectl orders status <id> <status>
func ordersStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an order to PENDING, SHIPPED, COMPLETED or CANCELLED",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := models.ParseOrderStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown status %q", args[1])
			}

			a, err := boot()
			if err != nil {
				return err
			}
			defer a.Close()

			order, found, err := a.orders.UpdateStatus(args[0], status)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("%w: %s", errOrderNotFound, args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s is now %s\n", order.ID, order.Status)
			return nil
		},
	}
}

func printOrder(cmd *cobra.Command, order *models.Order) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Order:    %s\n", order.ID)
	fmt.Fprintf(out, "Status:   %s (%s)\n", order.Status, order.Status.Label())
	fmt.Fprintf(out, "Customer: %s, %s\n", order.CustomerName, order.Phone)
	fmt.Fprintf(out, "Address:  %s\n", order.Address)
	fmt.Fprintf(out, "Created:  %s\n", order.CreatedAt.Format("2006-01-02 15:04:05"))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tQTY\tPRICE")
	for _, item := range order.Items {
		fmt.Fprintf(w, "%s\t%d\t%d\n", item.Name, item.Quantity, item.Price)
	}
	w.Flush()
	fmt.Fprintf(out, "Total:    %d\n", order.TotalAmount)
}
