package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/pricing"

	"github.com/google/uuid"
)

// pressExcluded are categories that never enter the press pipeline on the
// paper-type heuristic, even when an item carries a paper type. "Press" items
// always qualify regardless of this set.
var pressExcluded = map[string]struct{}{
	"Flex":     {},
	"Gift":     {},
	"Crest":    {},
	"Branding": {},
}

// IsPressJob reports whether an order belongs in the production queue: any
// item of category "Press", or any item outside the excluded set that has a
// paper type. There is no order-level flag; this heuristic is the membership
// rule and is kept exactly as the shop uses it.
func IsPressJob(o *models.Order) bool {
	for i := range o.Items {
		it := &o.Items[i]
		if it.Category == pricing.CategoryPress {
			return true
		}
		if _, excluded := pressExcluded[it.Category]; excluded {
			continue
		}
		if it.PaperType != nil && *it.PaperType != "" {
			return true
		}
	}
	return false
}

// StageOf treats a missing stage as PLATE.
func StageOf(o *models.Order) models.PressStage {
	if o.PressStage == nil {
		return models.StagePlate
	}
	return *o.PressStage
}

func priorityRank(p models.Priority) int {
	switch p {
	case models.PriorityUrgent:
		return 3
	case models.PriorityNormal:
		return 2
	case models.PriorityLow:
		return 1
	}
	return 0
}

// SortQueue orders the production queue in place: priority rank descending,
// then order date descending. Stable for equal keys.
func SortQueue(orders []*models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		ri, rj := priorityRank(orders[i].Priority), priorityRank(orders[j].Priority)
		if ri != rj {
			return ri > rj
		}
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
}

// Elapsed returns time in production since the first transition into PRINT.
// ok is false if production never started.
func Elapsed(o *models.Order, now time.Time) (time.Duration, bool) {
	if o.PressStartTime == nil {
		return 0, false
	}
	return now.Sub(*o.PressStartTime), true
}

// FormatElapsed renders a duration as hours and minutes, e.g. "3h 25m".
func FormatElapsed(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// AdvanceStage sets the press stage. The production start timestamp is
// stamped exactly once, on the first transition into PRINT, and survives any
// later transition including moving backward through the pipeline.
func (s *orderService) AdvanceStage(ctx context.Context, orderID uuid.UUID, stage models.PressStage) (*models.Order, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	if !stage.Valid() {
		return nil, ErrStageInvalid
	}

	ord, err := s.repo.Orders.GetByID(ctx, ws, orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, ErrOrderNotFound
	}

	var startTime *time.Time
	if stage == models.StagePrint && ord.PressStartTime == nil {
		t := s.now()
		startTime = &t
	}

	if err := s.repo.Orders.UpdateStage(ctx, ord.ID, stage, startTime); err != nil {
		return nil, err
	}
	return s.repo.Orders.GetByID(ctx, ws, ord.ID)
}

// PressQueue derives the priority-ordered production view of the workspace.
func (s *orderService) PressQueue(ctx context.Context) ([]*models.Order, error) {
	ws, err := requireWorkspace(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.Orders.ListAll(ctx, ws)
	if err != nil {
		return nil, err
	}

	queue := make([]*models.Order, 0, len(all))
	for _, o := range all {
		if IsPressJob(o) {
			queue = append(queue, o)
		}
	}
	SortQueue(queue)
	return queue, nil
}
