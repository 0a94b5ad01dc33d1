package pricing

import (
	"testing"

	"pressdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_AreaBased(t *testing.T) {
	// 10ft x 5ft flex at 20/sqft
	total, err := Price(Area{Width: 10, Height: 5}, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), total)

	// two copies double it
	total, err = Price(Area{Width: 10, Height: 5}, 2, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2000), total)
}

func TestPrice_UnitBased(t *testing.T) {
	// 1000 visiting cards at 1.5 each
	total, err := Price(Press{PaperType: "Art Paper"}, 1000, 1.5)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), total)

	total, err = Price(Unit{}, 3, 99.4)
	require.NoError(t, err)
	assert.Equal(t, int64(298), total, "rounded to nearest whole unit")
}

func TestPrice_Validation(t *testing.T) {
	_, err := Price(Unit{}, 0, 10)
	assert.ErrorIs(t, err, ErrQuantityInvalid)

	_, err = Price(Unit{}, -1, 10)
	assert.ErrorIs(t, err, ErrQuantityInvalid)

	_, err = Price(Unit{}, 1, 0)
	assert.ErrorIs(t, err, ErrRateInvalid)

	_, err = Price(Area{Width: 10, Height: 5}, 1, -3)
	assert.ErrorIs(t, err, ErrRateInvalid)
}

func TestPrice_Rounding(t *testing.T) {
	// 2.5ft x 1.5ft at 13.33 = 49.9875 -> 50
	total, err := Price(Area{Width: 2.5, Height: 1.5}, 1, 13.33)
	require.NoError(t, err)
	assert.Equal(t, int64(50), total)
}

func TestGrandTotal_ClampsAtZero(t *testing.T) {
	assert.Equal(t, int64(2500), GrandTotal(2500, 0))
	assert.Equal(t, int64(2200), GrandTotal(2500, 300))
	// discount exceeding subtotal never yields a negative total
	assert.Equal(t, int64(0), GrandTotal(500, 800))
}

func TestDue_AllowsNegative(t *testing.T) {
	assert.Equal(t, int64(1500), Due(2500, 1000))
	// overpayment is surfaced as a credit, not clamped
	assert.Equal(t, int64(-200), Due(0, 200))
}

func TestIsAreaBased(t *testing.T) {
	assert.True(t, IsAreaBased("Flex"))
	assert.True(t, IsAreaBased("PVC"))
	assert.True(t, IsAreaBased("Sticker"))
	assert.False(t, IsAreaBased("Press"))
	assert.False(t, IsAreaBased("Gift"))
	assert.False(t, IsAreaBased("flex"), "set is case-sensitive and closed")
}

func TestAreaCategories_StableAndClosed(t *testing.T) {
	got := AreaCategories()
	assert.Equal(t, []string{"Flex", "Lamination", "One Way Vision", "PVC", "Sticker", "Vinyl"}, got)
	// every listed category selects area pricing
	for _, c := range got {
		assert.True(t, IsAreaBased(c), c)
	}
}

func TestBuildItem_AreaPopulatesDimensions(t *testing.T) {
	item, err := BuildItem(Draft{
		Name:     "Shop front banner",
		Category: "Flex",
		Quantity: 1,
		Rate:     20,
		Width:    10,
		Height:   5,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), item.Total)
	require.NotNil(t, item.Width)
	require.NotNil(t, item.Height)
	require.NotNil(t, item.SqFt)
	assert.Equal(t, float64(50), *item.SqFt)
	assert.Nil(t, item.PaperType)
	assert.Nil(t, item.PrintSide)
	assert.Nil(t, item.ColorMode)
	assert.NotEqual(t, item.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestBuildItem_PressPopulatesSpec(t *testing.T) {
	item, err := BuildItem(Draft{
		Name:      "Visiting cards",
		Category:  "Press",
		Quantity:  1000,
		Rate:      1.5,
		PaperType: "Art Card",
		PrintSide: "Double",
		ColorMode: "CMYK",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1500), item.Total)
	require.NotNil(t, item.PaperType)
	assert.Equal(t, "Art Card", *item.PaperType)
	assert.Nil(t, item.Width)
	assert.Nil(t, item.SqFt)
}

func TestBuildItem_GenericPopulatesNeither(t *testing.T) {
	item, err := BuildItem(Draft{
		Name:     "Mug print",
		Category: "Gift",
		Quantity: 12,
		Rate:     150,
		// stray dimensions for a unit category are dropped
		Width:  3,
		Height: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1800), item.Total)
	assert.Nil(t, item.Width)
	assert.Nil(t, item.Height)
	assert.Nil(t, item.SqFt)
	assert.Nil(t, item.PaperType)
}

func TestBuildItem_Validation(t *testing.T) {
	_, err := BuildItem(Draft{Name: "  ", Category: "Flex", Quantity: 1, Rate: 10})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = BuildItem(Draft{Name: "x", Category: "Flex", Quantity: 0, Rate: 10})
	assert.ErrorIs(t, err, ErrQuantityInvalid)

	_, err = BuildItem(Draft{Name: "x", Category: "Flex", Quantity: 1, Rate: 0})
	assert.ErrorIs(t, err, ErrRateInvalid)
}

func TestReprice_KeepsTotalDerived(t *testing.T) {
	item, err := BuildItem(Draft{
		Name: "Banner", Category: "Flex", Quantity: 1, Rate: 20, Width: 10, Height: 5,
	})
	require.NoError(t, err)
	require.Equal(t, int64(1000), item.Total)

	// a mutation path changes quantity; total must follow
	item.Quantity = 3
	require.NoError(t, Reprice(&item))
	assert.Equal(t, int64(3000), item.Total)

	w := 2.0
	item.Width = &w
	require.NoError(t, Reprice(&item))
	assert.Equal(t, int64(600), item.Total)
	assert.Equal(t, float64(10), *item.SqFt)
}

func TestSubTotal(t *testing.T) {
	items := []models.OrderItem{{Total: 1000}, {Total: 1500}}
	assert.Equal(t, int64(2500), SubTotal(items))
	assert.Equal(t, int64(0), SubTotal(nil))
}

func TestPaidAmount(t *testing.T) {
	payments := []models.PaymentRecord{{Amount: 1000}, {Amount: 700}}
	assert.Equal(t, int64(1700), PaidAmount(payments))
}
