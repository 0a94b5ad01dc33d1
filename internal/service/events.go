package service

import (
	"context"
	"time"

	"pressdesk/internal/models"

	"github.com/google/uuid"
)

type OrderCreatedEvent struct {
	OrderID     uuid.UUID `json:"order_id"`
	WorkspaceID uuid.UUID `json:"workspace_id"`
	Number      int       `json:"number"`
	CustomerID  uuid.UUID `json:"customer_id"`
	GrandTotal  int64     `json:"grand_total"`
	DueAmount   int64     `json:"due_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransactionRecordedEvent struct {
	TransactionID  uuid.UUID              `json:"transaction_id"`
	WorkspaceID    uuid.UUID              `json:"workspace_id"`
	Type           models.TransactionType `json:"type"`
	Category       string                 `json:"category"`
	Amount         int64                  `json:"amount"`
	RelatedOrderID *uuid.UUID             `json:"related_order_id,omitempty"`
	Date           time.Time              `json:"date"`
}

type EventBus interface {
	PublishOrderCreated(ctx context.Context, e OrderCreatedEvent) error
	PublishTransactionRecorded(ctx context.Context, e TransactionRecordedEvent) error
}
