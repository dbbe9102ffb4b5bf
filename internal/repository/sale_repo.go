package repository

import (
	"context"

	"qistpos/internal/dto"
	"qistpos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	// CreateTx persists the sale together with its attached witness and
	// installment rows in one insert cascade.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	Summary(ctx context.Context, filter dto.SummaryFilter) ([]dto.SummaryLine, error)
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Product").
		Preload("Witness").
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("installment_number ASC")
		}).
		First(&s, "id = ?", id).Error
	return &s, err
}

// summaryRow mirrors the aggregate projection before decimal conversion.
type summaryRow struct {
	SaleType    string
	Count       int64
	TotalAmount decimal.Decimal
}

func (r *saleRepo) Summary(ctx context.Context, filter dto.SummaryFilter) ([]dto.SummaryLine, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{}).
		Select(`sale_type,
			COUNT(*) AS count,
			COALESCE(SUM(CASE WHEN sale_type = 'cash' THEN amount ELSE total_with_markup END), 0) AS total_amount`)

	if filter.Start != "" && filter.End != "" {
		q = q.Where("created_at::date BETWEEN ? AND ?", filter.Start, filter.End)
	} else if filter.Start != "" {
		q = q.Where("created_at::date >= ?", filter.Start)
	} else if filter.End != "" {
		q = q.Where("created_at::date <= ?", filter.End)
	}

	var rows []summaryRow
	if err := q.Group("sale_type").Order("sale_type").Scan(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]dto.SummaryLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, dto.SummaryLine{
			SaleType:    row.SaleType,
			Count:       row.Count,
			TotalAmount: row.TotalAmount,
		})
	}
	return lines, nil
}
