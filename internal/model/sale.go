package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	SaleTypeCash        = "cash"
	SaleTypeInstallment = "installment"
)

// Sale is immutable once created. The markup/total/advance/count columns are
// populated only for installment sales and stay NULL for cash sales.
type Sale struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SaleType   string    `gorm:"type:varchar(20);not null"` // "cash" | "installment"
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	MarkupPercentage *decimal.Decimal `gorm:"type:decimal(5,2)"`
	TotalWithMarkup  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	AdvancePayment   *decimal.Decimal `gorm:"type:decimal(12,2)"`
	InstallmentCount *int

	CreatedAt time.Time

	Customer     *Customer     `gorm:"foreignKey:CustomerID"`
	Product      *Product      `gorm:"foreignKey:ProductID"`
	Witness      *Witness      `gorm:"foreignKey:SaleID"`
	Installments []Installment `gorm:"foreignKey:SaleID"`
}

// Witness records the third party legally backing an installment contract.
// Exactly one per installment sale; cash sales have none.
type Witness struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	CNIC      string    `gorm:"column:cnic;not null"`
	Address   string    `gorm:"not null"`
	CreatedAt time.Time
}
