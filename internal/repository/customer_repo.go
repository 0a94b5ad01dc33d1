package repository

import (
	"context"
	"errors"

	"pressdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *models.Customer) error
	GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.Customer, error)
	List(ctx context.Context, workspaceID uuid.UUID) ([]models.Customer, error)
	Update(ctx context.Context, c *models.Customer) error
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) CustomerRepo { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) GetByID(ctx context.Context, workspaceID, id uuid.UUID) (*models.Customer, error) {
	var c models.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ? AND workspace_id = ?", id, workspaceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &c, err
}

func (r *customerRepo) List(ctx context.Context, workspaceID uuid.UUID) ([]models.Customer, error) {
	var list []models.Customer
	err := r.db.WithContext(ctx).Where("workspace_id = ?", workspaceID).Order("name ASC").Find(&list).Error
	return list, err
}

func (r *customerRepo) Update(ctx context.Context, c *models.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}
