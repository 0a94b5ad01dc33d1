// Package export flattens workspace collections to CSV for backup and
// spreadsheet use. Read-only over the core's data.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"pressdesk/internal/models"
)

const dateLayout = "2006-01-02"

func WriteOrdersCSV(w io.Writer, orders []models.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"number", "order_date", "customer", "phone", "status", "priority",
		"sub_total", "discount", "grand_total", "paid", "due",
	}); err != nil {
		return err
	}
	for i := range orders {
		o := &orders[i]
		rec := []string{
			fmt.Sprintf("%d", o.Number),
			o.OrderDate.Format(dateLayout),
			o.CustomerName,
			o.CustomerPhone,
			string(o.Status),
			string(o.Priority),
			fmt.Sprintf("%d", o.SubTotal),
			fmt.Sprintf("%d", o.Discount),
			fmt.Sprintf("%d", o.GrandTotal),
			fmt.Sprintf("%d", o.PaidAmount),
			fmt.Sprintf("%d", o.DueAmount),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteCustomersCSV(w io.Writer, customers []models.Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "phone", "address"}); err != nil {
		return err
	}
	for i := range customers {
		c := &customers[i]
		if err := cw.Write([]string{c.Name, c.Phone, c.Address}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func WriteTransactionsCSV(w io.Writer, txs []models.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "type", "category", "amount", "description", "related_order_id"}); err != nil {
		return err
	}
	for i := range txs {
		t := &txs[i]
		related := ""
		if t.RelatedOrderID != nil {
			related = t.RelatedOrderID.String()
		}
		rec := []string{
			t.Date.Format(dateLayout),
			string(t.Type),
			t.Category,
			fmt.Sprintf("%d", t.Amount),
			t.Description,
			related,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
