package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment is one entry of a sale's payment schedule. Entry number 1 is the
// advance payment, created already Paid. Only Status and PaidDate mutate after
// creation; amount, due date and remaining balance are frozen at sale time.
type Installment struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID            uuid.UUID `gorm:"type:uuid;not null;index:idx_sale_installment,unique"`
	InstallmentNumber int       `gorm:"not null;index:idx_sale_installment,unique"`
	Amount            decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDate           time.Time       `gorm:"type:date;not null"`
	Status            string          `gorm:"type:varchar(10);not null;default:'Pending'"` // "Pending" | "Paid"
	PaidDate          *time.Time      `gorm:"type:date"`
	// RemainingBalance is the balance after this installment is applied —
	// except for entry 1, where it holds the balance outstanding before any
	// scheduled payment (the advance does not subtract from it).
	RemainingBalance decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt        time.Time
}
