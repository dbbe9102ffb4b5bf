package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CustomerInput is embedded verbatim in both sale requests. A fresh customer
// row is created for every sale; CNIC is optional.
type CustomerInput struct {
	Name          string  `json:"name"           validate:"required"`
	ContactNumber string  `json:"contact_number" validate:"required"`
	CNIC          *string `json:"cnic"           validate:"omitempty"`
	Address       string  `json:"address"        validate:"required"`
}

// WitnessInput is required for installment sales — one witness per sale.
type WitnessInput struct {
	Name    string `json:"name"    validate:"required"`
	CNIC    string `json:"cnic"    validate:"required"`
	Address string `json:"address" validate:"required"`
}

type CashSaleRequest struct {
	Customer  CustomerInput   `json:"customer"   validate:"required"`
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Quantity  int             `json:"quantity"   validate:"required,min=1"`
	Amount    decimal.Decimal `json:"amount"     validate:"required,gt=0"`
}

// InstallmentSaleRequest carries the raw plan inputs; the handler resolves
// them into a schedule via the calculator before touching the ledger.
type InstallmentSaleRequest struct {
	Customer         CustomerInput   `json:"customer"          validate:"required"`
	Witness          WitnessInput    `json:"witness"           validate:"required"`
	ProductID        string          `json:"product_id"        validate:"required,uuid"`
	Amount           decimal.Decimal `json:"amount"            validate:"required,gt=0"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage" validate:"min=0,max=100"`
	AdvancePayment   decimal.Decimal `json:"advance_payment"   validate:"min=0"`
	InstallmentCount int             `json:"installment_count" validate:"required,min=1"`
}

// PlanPreviewRequest feeds the pure calculator; nothing is persisted.
type PlanPreviewRequest struct {
	Amount           decimal.Decimal `json:"amount"            validate:"required,gt=0"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage" validate:"min=0,max=100"`
	AdvancePayment   decimal.Decimal `json:"advance_payment"   validate:"min=0"`
	InstallmentCount int             `json:"installment_count" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InstallmentEntryResponse struct {
	Number           int             `json:"number"`
	DueDate          string          `json:"due_date"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

type SaleResponse struct {
	ID               string                     `json:"id"`
	SaleType         string                     `json:"sale_type"`
	CustomerID       string                     `json:"customer_id"`
	CustomerName     string                     `json:"customer_name"`
	ProductID        string                     `json:"product_id"`
	ProductName      string                     `json:"product_name"`
	Amount           decimal.Decimal            `json:"amount"`
	MarkupPercentage *decimal.Decimal           `json:"markup_percentage,omitempty"`
	TotalWithMarkup  *decimal.Decimal           `json:"total_with_markup,omitempty"`
	AdvancePayment   *decimal.Decimal           `json:"advance_payment,omitempty"`
	InstallmentCount *int                       `json:"installment_count,omitempty"`
	Installments     []InstallmentEntryResponse `json:"installments,omitempty"`
	CreatedAt        string                     `json:"created_at"`
}
