package service

import (
	"context"
	"errors"

	"qistpos/internal/infra"
	"qistpos/internal/model"
	"qistpos/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptService renders a recorded sale into a PDF receipt on disk and
// returns the file path for the handler to stream back.
type ReceiptService interface {
	Generate(ctx context.Context, saleID uuid.UUID) (string, error)
}

type receiptService struct {
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
	storagePath  string
}

func NewReceiptService(saleRepo repository.SaleRepository, settingsRepo repository.SettingsRepository, storagePath string) ReceiptService {
	return &receiptService{
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
		storagePath:  storagePath,
	}
}

func (s *receiptService) Generate(ctx context.Context, saleID uuid.UUID) (string, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", &PersistenceError{Op: "load sale", Err: err}
	}

	// Receipts render without business identity until settings are saved.
	var settings *model.Settings
	if row, err := s.settingsRepo.Get(ctx); err == nil {
		settings = row
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", &PersistenceError{Op: "load settings", Err: err}
	}

	path, err := infra.GenerateReceiptPDF(sale, settings, s.storagePath)
	if err != nil {
		return "", &PersistenceError{Op: "render receipt", Err: err}
	}
	return path, nil
}
