package service

import (
	"testing"
	"time"

	"pressdesk/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestIsPressJob(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  bool
	}{
		{
			name:  "press category always qualifies",
			items: []models.OrderItem{{Category: "Press"}},
			want:  true,
		},
		{
			name:  "gift without paper type excluded",
			items: []models.OrderItem{{Category: "Gift"}},
			want:  false,
		},
		{
			name: "excluded category stays out even with paper type",
			items: []models.OrderItem{
				{Category: "Flex", PaperType: strPtr("Glossy")},
			},
			want: false,
		},
		{
			name: "non-excluded category with paper type qualifies",
			items: []models.OrderItem{
				{Category: "Poster", PaperType: strPtr("Art Paper")},
			},
			want: true,
		},
		{
			name: "one qualifying item is enough",
			items: []models.OrderItem{
				{Category: "Gift"},
				{Category: "Press"},
			},
			want: true,
		},
		{
			name:  "empty paper type does not qualify",
			items: []models.OrderItem{{Category: "Poster", PaperType: strPtr("")}},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &models.Order{Items: tt.items}
			assert.Equal(t, tt.want, IsPressJob(o))
		})
	}
}

func TestStageOf_DefaultsToPlate(t *testing.T) {
	o := &models.Order{}
	assert.Equal(t, models.StagePlate, StageOf(o))

	st := models.StageBind
	o.PressStage = &st
	assert.Equal(t, models.StageBind, StageOf(o))
}

func TestSortQueue_PriorityThenDate(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mk := func(p models.Priority, day int) *models.Order {
		return &models.Order{Priority: p, OrderDate: base.AddDate(0, 0, day)}
	}

	queue := []*models.Order{
		mk(models.PriorityLow, 1),
		mk(models.PriorityUrgent, 2),
		mk(models.PriorityNormal, 3),
		mk(models.PriorityUrgent, 4),
	}
	SortQueue(queue)

	assert.Equal(t, models.PriorityUrgent, queue[0].Priority)
	assert.Equal(t, models.PriorityUrgent, queue[1].Priority)
	assert.Equal(t, models.PriorityNormal, queue[2].Priority)
	assert.Equal(t, models.PriorityLow, queue[3].Priority)
	// within the same priority, most recent first
	assert.True(t, queue[0].OrderDate.After(queue[1].OrderDate))
}

func TestSortQueue_UnknownPriorityLast(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	queue := []*models.Order{
		{Priority: "", OrderDate: base},
		{Priority: models.PriorityLow, OrderDate: base},
	}
	SortQueue(queue)
	assert.Equal(t, models.PriorityLow, queue[0].Priority)
}

func TestSortQueue_StableForEqualKeys(t *testing.T) {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	a := &models.Order{Number: 1, Priority: models.PriorityNormal, OrderDate: base}
	b := &models.Order{Number: 2, Priority: models.PriorityNormal, OrderDate: base}
	queue := []*models.Order{a, b}
	SortQueue(queue)
	assert.Equal(t, 1, queue[0].Number)
	assert.Equal(t, 2, queue[1].Number)
}

func TestElapsed(t *testing.T) {
	now := time.Date(2026, 8, 1, 13, 25, 0, 0, time.UTC)

	o := &models.Order{}
	_, ok := Elapsed(o, now)
	assert.False(t, ok, "never started")

	start := now.Add(-3*time.Hour - 25*time.Minute)
	o.PressStartTime = &start
	d, ok := Elapsed(o, now)
	assert.True(t, ok)
	assert.Equal(t, "3h 25m", FormatElapsed(d))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatElapsed(0))
	assert.Equal(t, "0h 59m", FormatElapsed(59*time.Minute))
	assert.Equal(t, "25h 1m", FormatElapsed(25*time.Hour+time.Minute))
}
