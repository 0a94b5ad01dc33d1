package repository

import (
	"context"
	"errors"
	"time"

	"pressdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderListFilter struct {
	WorkspaceID uuid.UUID
	CustomerID  *uuid.UUID
	Status      *models.OrderStatus
	Limit       int
	Offset      int
}

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error)
	ListAll(ctx context.Context, workspaceID uuid.UUID) ([]*models.Order, error)
	NextNumber(ctx context.Context, workspaceID uuid.UUID) (int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error
	UpdateTotals(ctx context.Context, id uuid.UUID, subTotal, grandTotal, paidAmount, dueAmount int64) error
	UpdateStage(ctx context.Context, id uuid.UUID, stage models.PressStage, startTime *time.Time) error
	SumDueByCustomer(ctx context.Context, workspaceID, customerID uuid.UUID) (int64, error)
	Exists(ctx context.Context, workspaceID, id uuid.UUID) (bool, error)

	WithTx(ctx context.Context, fn func(or OrderRepo, ir OrderItemRepo, pr PaymentRepo, tr TransactionRepo) error) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func preloadOrder(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Payments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") })
}

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := preloadOrder(r.db.WithContext(ctx)).
		First(&ord, "id = ? AND workspace_id = ?", id, workspaceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) List(ctx context.Context, f OrderListFilter) ([]*models.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Order{}).Where("workspace_id = ?", f.WorkspaceID)

	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []*models.Order
	err := preloadOrder(q.Order("order_date DESC").Limit(f.Limit).Offset(f.Offset)).Find(&list).Error
	return list, total, err
}

func (r *orderRepo) ListAll(ctx context.Context, workspaceID uuid.UUID) ([]*models.Order, error) {
	var list []*models.Order
	err := preloadOrder(r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID)).
		Order("order_date DESC").Find(&list).Error
	return list, err
}

// NextNumber returns the next sequential order number for a workspace. Must
// run inside the same transaction that creates the order: the advisory lock
// serializes concurrent creates per workspace and is held until commit.
func (r *orderRepo) NextNumber(ctx context.Context, workspaceID uuid.UUID) (int, error) {
	if err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", workspaceID.String()).Error; err != nil {
		return 0, err
	}
	var last int
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("workspace_id = ?", workspaceID).
		Select("COALESCE(MAX(number), 0)").Scan(&last).Error
	return last + 1, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) UpdateTotals(ctx context.Context, id uuid.UUID, subTotal, grandTotal, paidAmount, dueAmount int64) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(map[string]any{
		"sub_total":   subTotal,
		"grand_total": grandTotal,
		"paid_amount": paidAmount,
		"due_amount":  dueAmount,
	}).Error
}

func (r *orderRepo) UpdateStage(ctx context.Context, id uuid.UUID, stage models.PressStage, startTime *time.Time) error {
	upd := map[string]any{"press_stage": stage}
	if startTime != nil {
		upd["press_start_time"] = startTime
	}
	return r.db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(upd).Error
}

func (r *orderRepo) SumDueByCustomer(ctx context.Context, workspaceID, customerID uuid.UUID) (int64, error) {
	var due int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("workspace_id = ? AND customer_id = ?", workspaceID, customerID).
		Select("COALESCE(SUM(due_amount), 0)").Scan(&due).Error
	return due, err
}

func (r *orderRepo) Exists(ctx context.Context, workspaceID, id uuid.UUID) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND workspace_id = ?", id, workspaceID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *orderRepo) WithTx(ctx context.Context, fn func(or OrderRepo, ir OrderItemRepo, pr PaymentRepo, tr TransactionRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx}, &orderItemRepo{db: tx}, &paymentRepo{db: tx}, &transactionRepo{db: tx})
	})
}
