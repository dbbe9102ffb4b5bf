package repository

import (
	"context"

	"qistpos/internal/dto"
	"qistpos/internal/model"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	// CreateTx runs inside the ledger transaction that creates the sale.
	CreateTx(tx *gorm.DB, c *model.Customer) error
	List(ctx context.Context, filter dto.CustomerFilter) ([]model.Customer, int64, error)
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) CreateTx(tx *gorm.DB, c *model.Customer) error {
	return tx.Create(c).Error
}

func (r *customerRepo) List(ctx context.Context, filter dto.CustomerFilter) ([]model.Customer, int64, error) {
	var customers []model.Customer
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Customer{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR contact_number ILIKE ? OR cnic ILIKE ?",
			pattern, pattern, pattern)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("created_at DESC").Limit(filter.Limit).Offset(offset).Find(&customers).Error
	return customers, total, err
}
