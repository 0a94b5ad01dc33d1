package service

import (
	"context"
	"time"

	"pressdesk/internal/models"

	"github.com/google/uuid"
)

type ItemInput struct {
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

type CreateOrderInput struct {
	CustomerID   uuid.UUID
	Items        []ItemInput
	Discount     int64
	Advance      int64
	Priority     models.Priority
	DeliveryDate *time.Time
	Note         string
}

type ListFilter struct {
	CustomerID *uuid.UUID
	Status     *models.OrderStatus
	Limit      int
	Offset     int
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, f ListFilter) ([]models.Order, int64, error)
	AllOrders(ctx context.Context) ([]*models.Order, error)
	RecordPayment(ctx context.Context, orderID uuid.UUID, amount int64, note string) (*models.Order, error)
	SetStatus(ctx context.Context, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error)
	AdvanceStage(ctx context.Context, orderID uuid.UUID, stage models.PressStage) (*models.Order, error)
	PressQueue(ctx context.Context) ([]*models.Order, error)
	Invoice(ctx context.Context, orderID uuid.UUID) (*InvoiceView, error)
	CustomerDue(ctx context.Context, customerID uuid.UUID) (int64, error)
}
