package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"restaurant-ordering/order-svc/internal/domain"
	"restaurant-ordering/order-svc/internal/service"

	"github.com/spf13/cobra"
)

func (a *app) newOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect and update orders",
	}

	var status string
	list := &cobra.Command{
		Use:   "list",
		Short: "List every order grouped by customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groups, err := a.services.Orders.ListAll(cmd.Context(), operator)
			if err != nil {
				return err
			}
			return writeOrders(cmd.OutOrStdout(), groups, domain.OrderStatus(status))
		},
	}
	list.Flags().StringVar(&status, "status", "", "only show orders with this status")

	setStatus := &cobra.Command{
		Use:   "set-status <user-id> <order-id> <status>",
		Short: "Mark an order delivered or cancelled",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := service.ParseStatus(args[2])
			if err != nil {
				return err
			}
			order, err := a.services.Orders.UpdateStatus(cmd.Context(), operator, args[0], args[1], status)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %s is now %s\n", order.ID, order.Status)
			return nil
		},
	}

	cmd.AddCommand(list, setStatus)
	return cmd
}

func writeOrders(w io.Writer, groups []domain.UserOrders, status domain.OrderStatus) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CUSTOMER\tUSER\tORDER\tSTATUS\tITEMS\tTOTAL\tCREATED")
	for _, group := range groups {
		for _, order := range group.Orders {
			if status != "" && order.Status != status {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
				group.UserName, group.UserID, order.ID, order.Status,
				order.ItemCount(), order.Total.StringFixed(2),
				order.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return tw.Flush()
}
