package pricing

import (
	"errors"
	"math"
	"sort"

	"pressdesk/internal/models"
)

var (
	ErrRateInvalid     = errors.New("rate must be > 0")
	ErrQuantityInvalid = errors.New("quantity must be > 0")
	ErrNameRequired    = errors.New("item name is required")
)

// CategoryPress is the distinguished category priced per unit but routed
// through the plate/print/bind pipeline.
const CategoryPress = "Press"

// areaCategories is the closed set of square-footage materials. It is
// hard-coded on purpose: membership selects the pricing formula, and a
// user-editable flag would let a misclassification silently change prices.
// Custom categories added by a workspace always price per unit.
var areaCategories = map[string]struct{}{
	"Flex":           {},
	"PVC":            {},
	"Vinyl":          {},
	"Sticker":        {},
	"Lamination":     {},
	"One Way Vision": {},
}

func IsAreaBased(category string) bool {
	_, ok := areaCategories[category]
	return ok
}

// AreaCategories returns the closed area-priced set in stable order, for
// clients that render the item form per pricing mode.
func AreaCategories() []string {
	out := make([]string, 0, len(areaCategories))
	for c := range areaCategories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Spec is the closed tagged variant behind pricing-mode selection: exactly one
// of Area, Unit or Press applies to a line item.
type Spec interface{ isSpec() }

type Area struct {
	Width  float64
	Height float64
}

type Unit struct{}

type Press struct {
	PaperType string
	PrintSide string
	ColorMode string
}

func (Area) isSpec()  {}
func (Unit) isSpec()  {}
func (Press) isSpec() {}

// Round rounds to the nearest whole currency unit. All prices are whole Taka;
// cents do not exist anywhere in the system.
func Round(v float64) int64 { return int64(math.Round(v)) }

// Price computes a line total. Area specs price width*height*rate*quantity,
// everything else rate*quantity, both rounded to whole units.
func Price(s Spec, quantity int, rate float64) (int64, error) {
	if rate <= 0 {
		return 0, ErrRateInvalid
	}
	if quantity <= 0 {
		return 0, ErrQuantityInvalid
	}
	switch sp := s.(type) {
	case Area:
		return Round(sp.Width * sp.Height * rate * float64(quantity)), nil
	default:
		// Unit and Press both price per unit.
		return Round(rate * float64(quantity)), nil
	}
}

// SubTotal sums line totals.
func SubTotal(items []models.OrderItem) int64 {
	var sum int64
	for i := range items {
		sum += items[i].Total
	}
	return sum
}

// GrandTotal applies the discount and clamps at zero. A discount larger than
// the subtotal never produces a negative total.
func GrandTotal(subTotal, discount int64) int64 {
	g := subTotal - discount
	if g < 0 {
		return 0
	}
	return g
}

// PaidAmount sums the append-only payment history.
func PaidAmount(payments []models.PaymentRecord) int64 {
	var sum int64
	for i := range payments {
		sum += payments[i].Amount
	}
	return sum
}

// Due is grandTotal minus payments. Negative means the customer is owed a
// credit; callers must surface that, not clamp it.
func Due(grandTotal, paidAmount int64) int64 {
	return grandTotal - paidAmount
}
