package service

import (
	"io"
	"strconv"
	"strings"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/tealeg/xlsx"
)

var exportHeaders = []string{
	"Order ID", "User ID", "Customer", "Items", "Total", "Payment", "Status", "Created At", "Updated At",
}

// WriteOrdersXLSX writes one row per order to a single "Orders" sheet.
func WriteOrdersXLSX(w io.Writer, groups []domain.UserOrders) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetString(h)
	}

	for _, group := range groups {
		for _, order := range group.Orders {
			items := make([]string, 0, len(order.Items))
			for _, item := range order.Items {
				items = append(items, item.Name+" x"+strconv.Itoa(item.Quantity))
			}

			row := sheet.AddRow()
			row.AddCell().SetString(order.ID)
			row.AddCell().SetString(order.UserID)
			row.AddCell().SetString(order.CustomerName)
			row.AddCell().SetString(strings.Join(items, ", "))
			row.AddCell().SetString(order.Total.StringFixed(2))
			row.AddCell().SetString(string(order.PaymentMethod))
			row.AddCell().SetString(string(order.Status))
			row.AddCell().SetString(order.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetString(order.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
	}

	return file.Write(w)
}
