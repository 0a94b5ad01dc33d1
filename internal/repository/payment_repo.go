package repository

import (
	"context"

	"pressdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentRepo is append-only by design: payment history is never edited or
// deleted, only summed.
type PaymentRepo interface {
	Create(ctx context.Context, p *models.PaymentRecord) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.PaymentRecord, error)
	SumByOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
}

type paymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) PaymentRepo { return &paymentRepo{db: db} }

func (r *paymentRepo) Create(ctx context.Context, p *models.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *paymentRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.PaymentRecord, error) {
	var rows []models.PaymentRecord
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *paymentRepo) SumByOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.PaymentRecord{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
