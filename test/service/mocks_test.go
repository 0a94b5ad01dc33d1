package service_test

import (
	"context"
	"time"

	"pressdesk/internal/models"
	"pressdesk/internal/repository"
	"pressdesk/internal/service"

	"github.com/google/uuid"
)

// Hand-rolled mocks for the repository interfaces the services depend on.

type MockOrderRepo struct {
	CreateFunc           func(ctx context.Context, o *models.Order) error
	GetByIDFunc          func(ctx context.Context, workspaceID, id uuid.UUID) (*models.Order, error)
	ListFunc             func(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error)
	ListAllFunc          func(ctx context.Context, workspaceID uuid.UUID) ([]*models.Order, error)
	NextNumberFunc       func(ctx context.Context, workspaceID uuid.UUID) (int, error)
	UpdateStatusFunc     func(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	UpdateTotalsFunc     func(ctx context.Context, id uuid.UUID, subTotal, grandTotal, paidAmount, dueAmount int64) error
	UpdateStageFunc      func(ctx context.Context, id uuid.UUID, stage models.PressStage, startTime *time.Time) error
	SumDueByCustomerFunc func(ctx context.Context, workspaceID, customerID uuid.UUID) (int64, error)
	ExistsFunc           func(ctx context.Context, workspaceID, id uuid.UUID) (bool, error)
	WithTxFunc           func(ctx context.Context, fn func(or repository.OrderRepo, ir repository.OrderItemRepo, pr repository.PaymentRepo, tr repository.TransactionRepo) error) error
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) List(ctx context.Context, f repository.OrderListFilter) ([]*models.Order, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockOrderRepo) ListAll(ctx context.Context, workspaceID uuid.UUID) ([]*models.Order, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockOrderRepo) NextNumber(ctx context.Context, workspaceID uuid.UUID) (int, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, workspaceID)
	}
	return 1, nil
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockOrderRepo) UpdateTotals(ctx context.Context, id uuid.UUID, subTotal, grandTotal, paidAmount, dueAmount int64) error {
	if m.UpdateTotalsFunc != nil {
		return m.UpdateTotalsFunc(ctx, id, subTotal, grandTotal, paidAmount, dueAmount)
	}
	return nil
}

func (m *MockOrderRepo) UpdateStage(ctx context.Context, id uuid.UUID, stage models.PressStage, startTime *time.Time) error {
	if m.UpdateStageFunc != nil {
		return m.UpdateStageFunc(ctx, id, stage, startTime)
	}
	return nil
}

func (m *MockOrderRepo) SumDueByCustomer(ctx context.Context, workspaceID, customerID uuid.UUID) (int64, error) {
	if m.SumDueByCustomerFunc != nil {
		return m.SumDueByCustomerFunc(ctx, workspaceID, customerID)
	}
	return 0, nil
}

func (m *MockOrderRepo) Exists(ctx context.Context, workspaceID, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, workspaceID, id)
	}
	return false, nil
}

func (m *MockOrderRepo) WithTx(ctx context.Context, fn func(or repository.OrderRepo, ir repository.OrderItemRepo, pr repository.PaymentRepo, tr repository.TransactionRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return nil
}

type MockOrderItemRepo struct {
	BulkCreateFunc   func(ctx context.Context, items []models.OrderItem) error
	GetByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error)
	SumByOrderFunc   func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockOrderItemRepo) BulkCreate(ctx context.Context, items []models.OrderItem) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, items)
	}
	return nil
}

func (m *MockOrderItemRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.OrderItem, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockOrderItemRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.SumByOrderFunc != nil {
		return m.SumByOrderFunc(ctx, orderID)
	}
	return 0, nil
}

type MockPaymentRepo struct {
	CreateFunc       func(ctx context.Context, p *models.PaymentRecord) error
	GetByOrderIDFunc func(ctx context.Context, orderID uuid.UUID) ([]models.PaymentRecord, error)
	SumByOrderFunc   func(ctx context.Context, orderID uuid.UUID) (int64, error)
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *models.PaymentRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockPaymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.PaymentRecord, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *MockPaymentRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	if m.SumByOrderFunc != nil {
		return m.SumByOrderFunc(ctx, orderID)
	}
	return 0, nil
}

type MockTransactionRepo struct {
	CreateFunc       func(ctx context.Context, t *models.Transaction) error
	ListFunc         func(ctx context.Context, f repository.TransactionListFilter) ([]models.Transaction, int64, error)
	ListAllFunc      func(ctx context.Context, workspaceID uuid.UUID) ([]models.Transaction, error)
	GetByOrderIDFunc func(ctx context.Context, workspaceID, orderID uuid.UUID) ([]models.Transaction, error)
}

func (m *MockTransactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *MockTransactionRepo) List(ctx context.Context, f repository.TransactionListFilter) ([]models.Transaction, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, f)
	}
	return nil, 0, nil
}

func (m *MockTransactionRepo) ListAll(ctx context.Context, workspaceID uuid.UUID) ([]models.Transaction, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockTransactionRepo) GetByOrderID(ctx context.Context, workspaceID, orderID uuid.UUID) ([]models.Transaction, error) {
	if m.GetByOrderIDFunc != nil {
		return m.GetByOrderIDFunc(ctx, workspaceID, orderID)
	}
	return nil, nil
}

type MockCustomerRepo struct {
	CreateFunc  func(ctx context.Context, c *models.Customer) error
	GetByIDFunc func(ctx context.Context, workspaceID, id uuid.UUID) (*models.Customer, error)
	ListFunc    func(ctx context.Context, workspaceID uuid.UUID) ([]models.Customer, error)
	UpdateFunc  func(ctx context.Context, c *models.Customer) error
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *models.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCustomerRepo) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, workspaceID, id)
	}
	return nil, nil
}

func (m *MockCustomerRepo) List(ctx context.Context, workspaceID uuid.UUID) ([]models.Customer, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockCustomerRepo) Update(ctx context.Context, c *models.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

type MockSettingsRepo struct {
	GetFunc    func(ctx context.Context, workspaceID uuid.UUID) (*models.Settings, error)
	UpsertFunc func(ctx context.Context, s *models.Settings) error
}

func (m *MockSettingsRepo) Get(ctx context.Context, workspaceID uuid.UUID) (*models.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, workspaceID)
	}
	return nil, nil
}

func (m *MockSettingsRepo) Upsert(ctx context.Context, s *models.Settings) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, s)
	}
	return nil
}

// MockEventBus records everything published.
type MockEventBus struct {
	OrderCreated        []service.OrderCreatedEvent
	TransactionRecorded []service.TransactionRecordedEvent
}

func (m *MockEventBus) PublishOrderCreated(ctx context.Context, e service.OrderCreatedEvent) error {
	m.OrderCreated = append(m.OrderCreated, e)
	return nil
}

func (m *MockEventBus) PublishTransactionRecorded(ctx context.Context, e service.TransactionRecordedEvent) error {
	m.TransactionRecorded = append(m.TransactionRecorded, e)
	return nil
}
