package repository

import (
	"context"
	"errors"

	"qistpos/internal/model"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	// Get returns the active settings row, or gorm.ErrRecordNotFound when the
	// business has never been configured.
	Get(ctx context.Context) (*model.Settings, error)
	// Upsert updates the active row in place, creating it on first write.
	Upsert(ctx context.Context, s *model.Settings) error
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&s).Error
	return &s, err
}

func (r *settingsRepo) Upsert(ctx context.Context, s *model.Settings) error {
	var existing model.Settings
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.db.WithContext(ctx).Create(s).Error
	case err != nil:
		return err
	}

	existing.BusinessName = s.BusinessName
	existing.BusinessAddress = s.BusinessAddress
	existing.BusinessPhone = s.BusinessPhone
	return r.db.WithContext(ctx).Save(&existing).Error
}
