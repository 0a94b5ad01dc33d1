package service

import (
	"context"
	"fmt"
	"hash/crc32"
	"strings"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/pricing"

	"github.com/google/uuid"
)

// InvoiceView is a pure read projection of an order for display or print.
// Nothing in it is editable; rendering the same unmutated order twice yields
// identical output.
type InvoiceView struct {
	Number     string    `json:"number"`
	VerifyCode string    `json:"verify_code"`
	OrderDate  time.Time `json:"order_date"`
	Status     string    `json:"status"`

	Header   InvoiceHeader   `json:"header"`
	Customer InvoiceCustomer `json:"customer"`
	Lines    []InvoiceLine   `json:"lines"`
	Summary  InvoiceSummary  `json:"summary"`
	Footer   InvoiceFooter   `json:"footer"`
}

type InvoiceHeader struct {
	SoftwareName  string `json:"software_name"`
	LogoText      string `json:"logo_text"`
	LogoURL       string `json:"logo_url"`
	ThemeColor    string `json:"theme_color"`
	InvoiceHeader string `json:"invoice_header"`
}

// InvoiceCustomer comes from the order's snapshot, never the live directory
// record: the invoice must match what the customer was at order time.
type InvoiceCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type InvoiceLine struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Detail   string  `json:"detail"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Total    int64   `json:"total"`
}

type InvoiceSummary struct {
	SubTotal   int64 `json:"sub_total"`
	Discount   int64 `json:"discount"`
	GrandTotal int64 `json:"grand_total"`
	Received   int64 `json:"received"`
	NetDue     int64 `json:"net_due"`
	// DueEmphasis tells the display layer to highlight the due block.
	DueEmphasis bool `json:"due_emphasis"`
}

type InvoiceFooter struct {
	ContactPhone   string `json:"contact_phone"`
	ContactWebsite string `json:"contact_website"`
	Legal          string `json:"legal"`
}

const invoiceLegalText = "Goods once sold are not returnable. Please verify the invoice at delivery."

// RenderInvoice projects an order and workspace settings into an invoice
// view. Settings may be nil; branding fields then stay empty.
func RenderInvoice(o *models.Order, settings *models.Settings) InvoiceView {
	v := InvoiceView{
		Number:     fmt.Sprintf("INV-%04d", o.Number),
		VerifyCode: verifyCode(o.WorkspaceID, o.Number),
		OrderDate:  o.OrderDate,
		Status:     string(o.Status),
		Customer: InvoiceCustomer{
			Name:    o.CustomerName,
			Phone:   o.CustomerPhone,
			Address: o.CustomerAddress,
		},
		Summary: InvoiceSummary{
			SubTotal:    o.SubTotal,
			Discount:    o.Discount,
			GrandTotal:  o.GrandTotal,
			Received:    o.PaidAmount,
			NetDue:      o.DueAmount,
			DueEmphasis: o.DueAmount > 0,
		},
	}

	if settings != nil {
		v.Header = InvoiceHeader{
			SoftwareName:  settings.SoftwareName,
			LogoText:      settings.LogoText,
			LogoURL:       settings.LogoURL,
			ThemeColor:    settings.ThemeColor,
			InvoiceHeader: settings.InvoiceHeader,
		}
		v.Footer.ContactPhone = settings.ContactPhone
		v.Footer.ContactWebsite = settings.ContactWebsite
	}
	v.Footer.Legal = invoiceLegalText

	v.Lines = make([]InvoiceLine, 0, len(o.Items))
	for i := range o.Items {
		it := &o.Items[i]
		v.Lines = append(v.Lines, InvoiceLine{
			Name:     it.Name,
			Category: it.Category,
			Detail:   lineDetail(it),
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Total:    it.Total,
		})
	}

	return v
}

// lineDetail mirrors the pricing-mode split: area lines show dimensions,
// press lines show their production spec, plain unit lines show nothing.
func lineDetail(it *models.OrderItem) string {
	if pricing.IsAreaBased(it.Category) && it.Width != nil && it.Height != nil {
		sqft := *it.Width * *it.Height
		if it.SqFt != nil {
			sqft = *it.SqFt
		}
		return fmt.Sprintf("%g x %g ft (%g sqft)", *it.Width, *it.Height, sqft)
	}
	if it.Category == pricing.CategoryPress {
		parts := make([]string, 0, 3)
		for _, p := range []*string{it.PaperType, it.PrintSide, it.ColorMode} {
			if p != nil && *p != "" {
				parts = append(parts, *p)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

// verifyCode derives a stable scannable reference from the order identity.
// The display layer encodes it into a barcode/QR.
func verifyCode(workspaceID uuid.UUID, number int) string {
	sum := crc32.ChecksumIEEE([]byte(fmt.Sprintf("%s/%d", workspaceID, number)))
	return fmt.Sprintf("PD-%04d-%08X", number, sum)
}

// Invoice loads the order and its workspace settings and renders the view.
func (s *orderService) Invoice(ctx context.Context, orderID uuid.UUID) (*InvoiceView, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}

	ord, err := s.repo.Orders.GetByID(ctx, ws, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	settings, err := s.repo.Settings.Get(ctx, ws)
	if err != nil {
		return nil, err
	}

	view := RenderInvoice(ord, settings)
	return &view, nil
}
