package repository

import (
	"context"
	"time"

	"qistpos/internal/dto"
	"qistpos/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JoinedInstallment is a schedule entry scanned flat with its sale, customer
// and product context.
type JoinedInstallment struct {
	SaleID            uuid.UUID
	InstallmentNumber int
	Amount            decimal.Decimal
	DueDate           time.Time
	Status            string
	PaidDate          *time.Time
	RemainingBalance  decimal.Decimal
	CustomerName      string
	ContactNumber     string
	ProductName       string
	Brand             string
	Model             string
	TotalWithMarkup   decimal.Decimal
}

type InstallmentRepository interface {
	// MarkPaid stamps paidDate on the matching row and reports how many rows
	// matched. A row already Paid matches too and gets re-stamped.
	MarkPaid(ctx context.Context, saleID uuid.UUID, number int, paidDate time.Time) (int64, error)
	ListJoined(ctx context.Context, filter dto.InstallmentFilter) ([]JoinedInstallment, error)
}

type installmentRepo struct{ db *gorm.DB }

func NewInstallmentRepository(db *gorm.DB) InstallmentRepository { return &installmentRepo{db: db} }

func (r *installmentRepo) MarkPaid(ctx context.Context, saleID uuid.UUID, number int, paidDate time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Installment{}).
		Where("sale_id = ? AND installment_number = ?", saleID, number).
		Updates(map[string]interface{}{
			"status":    "Paid",
			"paid_date": paidDate,
		})
	return res.RowsAffected, res.Error
}

func (r *installmentRepo) ListJoined(ctx context.Context, filter dto.InstallmentFilter) ([]JoinedInstallment, error) {
	q := r.db.WithContext(ctx).Table("installments i").
		Select(`i.sale_id, i.installment_number, i.amount, i.due_date, i.status,
			i.paid_date, i.remaining_balance,
			c.name AS customer_name, c.contact_number,
			p.name AS product_name, p.brand, p.model,
			COALESCE(s.total_with_markup, s.amount) AS total_with_markup`).
		Joins("JOIN sales s ON i.sale_id = s.id").
		Joins("JOIN customers c ON s.customer_id = c.id").
		Joins("JOIN products p ON s.product_id = p.id")

	if filter.Status != "" {
		q = q.Where("i.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where("c.name ILIKE ? OR p.name ILIKE ? OR p.brand ILIKE ? OR p.model ILIKE ?",
			pattern, pattern, pattern, pattern)
	}

	var rows []JoinedInstallment
	err := q.Order("i.due_date ASC, i.installment_number ASC").Scan(&rows).Error
	return rows, err
}
