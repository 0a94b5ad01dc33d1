package repository

import (
	"context"
	"time"

	"pressdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionListFilter struct {
	WorkspaceID uuid.UUID
	Type        *models.TransactionType
	Category    *string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

type TransactionRepo interface {
	Create(ctx context.Context, t *models.Transaction) error
	List(ctx context.Context, f TransactionListFilter) ([]models.Transaction, int64, error)
	ListAll(ctx context.Context, workspaceID uuid.UUID) ([]models.Transaction, error)
	GetByOrderID(ctx context.Context, workspaceID, orderID uuid.UUID) ([]models.Transaction, error)
}

type transactionRepo struct{ db *gorm.DB }

func NewTransactionRepo(db *gorm.DB) TransactionRepo { return &transactionRepo{db: db} }

func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transactionRepo) List(ctx context.Context, f TransactionListFilter) ([]models.Transaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("workspace_id = ?", f.WorkspaceID)

	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	var list []models.Transaction
	err := q.Order("date DESC").Limit(f.Limit).Offset(f.Offset).Find(&list).Error
	return list, total, err
}

// ListAll returns the workspace's full ledger, newest first. Backs the CSV
// export, which reads the collection as one unit.
func (r *transactionRepo) ListAll(ctx context.Context, workspaceID uuid.UUID) ([]models.Transaction, error) {
	var list []models.Transaction
	err := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).
		Order("date DESC").Find(&list).Error
	return list, err
}

func (r *transactionRepo) GetByOrderID(ctx context.Context, workspaceID, orderID uuid.UUID) ([]models.Transaction, error) {
	var list []models.Transaction
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND related_order_id = ?", workspaceID, orderID).
		Order("date ASC").Find(&list).Error
	return list, err
}
