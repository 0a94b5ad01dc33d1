package pricing

import (
	"strings"

	"pressdesk/internal/models"

	"github.com/google/uuid"
)

// Draft is the raw line-item input before validation. Width/height are only
// read for area categories, paper/side/color only for "Press"; stray fields
// for other categories are dropped.
type Draft struct {
	Name     string
	Category string
	Quantity int
	Rate     float64

	Width  float64
	Height float64

	PaperType string
	PrintSide string
	ColorMode string

	DesignLink string
}

// SpecFor classifies a draft into its pricing variant.
func SpecFor(d Draft) Spec {
	switch {
	case IsAreaBased(d.Category):
		return Area{Width: d.Width, Height: d.Height}
	case d.Category == CategoryPress:
		return Press{PaperType: d.PaperType, PrintSide: d.PrintSide, ColorMode: d.ColorMode}
	default:
		return Unit{}
	}
}

// BuildItem validates and prices a draft into a persistable OrderItem with a
// fresh id. On any failure nothing is built.
func BuildItem(d Draft) (models.OrderItem, error) {
	if strings.TrimSpace(d.Name) == "" {
		return models.OrderItem{}, ErrNameRequired
	}

	spec := SpecFor(d)
	total, err := Price(spec, d.Quantity, d.Rate)
	if err != nil {
		return models.OrderItem{}, err
	}

	item := models.OrderItem{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(d.Name),
		Category: d.Category,
		Quantity: d.Quantity,
		Rate:     d.Rate,
		Total:    total,
	}
	if d.DesignLink != "" {
		link := d.DesignLink
		item.DesignLink = &link
	}

	switch sp := spec.(type) {
	case Area:
		w, h := sp.Width, sp.Height
		sqft := w * h
		item.Width = &w
		item.Height = &h
		item.SqFt = &sqft
	case Press:
		paper, side, color := sp.PaperType, sp.PrintSide, sp.ColorMode
		item.PaperType = &paper
		item.PrintSide = &side
		item.ColorMode = &color
	}

	return item, nil
}

// Reprice recomputes an existing item's total from its current fields. Total
// is derived state: every mutation path must run through here so the stored
// value can never drift from its inputs.
func Reprice(it *models.OrderItem) error {
	d := Draft{
		Name:     it.Name,
		Category: it.Category,
		Quantity: it.Quantity,
		Rate:     it.Rate,
	}
	if it.Width != nil {
		d.Width = *it.Width
	}
	if it.Height != nil {
		d.Height = *it.Height
	}
	total, err := Price(SpecFor(d), it.Quantity, it.Rate)
	if err != nil {
		return err
	}
	it.Total = total
	if IsAreaBased(it.Category) {
		sqft := d.Width * d.Height
		it.SqFt = &sqft
	}
	return nil
}
