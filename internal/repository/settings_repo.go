package repository

import (
	"context"
	"errors"

	"pressdesk/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepo interface {
	Get(ctx context.Context, workspaceID uuid.UUID) (*models.Settings, error)
	Upsert(ctx context.Context, s *models.Settings) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepo(db *gorm.DB) SettingsRepo { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context, workspaceID uuid.UUID) (*models.Settings, error) {
	var s models.Settings
	err := r.db.WithContext(ctx).First(&s, "workspace_id = ?", workspaceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *settingsRepo) Upsert(ctx context.Context, s *models.Settings) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "workspace_id"}},
		UpdateAll: true,
	}).Create(s).Error
}
