package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qistpos/internal/dto"
	"qistpos/internal/model"
	"qistpos/internal/repository"

	"gorm.io/gorm"
)

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.SettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	repo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{repo: repo}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("settings: %w", ErrNotFound)
		}
		return nil, &PersistenceError{Op: "load settings", Err: err}
	}
	return settingsToResponse(row), nil
}

func (s *settingsService) Update(ctx context.Context, req dto.SettingsRequest) (*dto.SettingsResponse, error) {
	row := &model.Settings{
		BusinessName:    req.BusinessName,
		BusinessAddress: req.BusinessAddress,
		BusinessPhone:   req.BusinessPhone,
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		return nil, &PersistenceError{Op: "save settings", Err: err}
	}

	saved, err := s.repo.Get(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "reload settings", Err: err}
	}
	return settingsToResponse(saved), nil
}

func settingsToResponse(row *model.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		BusinessName:    row.BusinessName,
		BusinessAddress: row.BusinessAddress,
		BusinessPhone:   row.BusinessPhone,
		UpdatedAt:       row.UpdatedAt.Format(time.RFC3339),
	}
}
