package dto

import "github.com/shopspring/decimal"

// InstallmentFilter is bound from the query string of GET /v1/installments.
type InstallmentFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=Pending Paid"`
	// Search matches customer name and product name/brand/model.
	Search string `form:"q"`
}

// InstallmentRow is one schedule entry joined with its sale, customer and
// product context, as the collections screen consumes it.
type InstallmentRow struct {
	SaleID            string          `json:"sale_id"`
	InstallmentNumber int             `json:"installment_number"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           string          `json:"due_date"`
	Status            string          `json:"status"`
	PaidDate          *string         `json:"paid_date"`
	RemainingBalance  decimal.Decimal `json:"remaining_balance"`
	CustomerName      string          `json:"customer_name"`
	ContactNumber     string          `json:"contact_number"`
	ProductName       string          `json:"product_name"`
	Brand             string          `json:"brand"`
	Model             string          `json:"model"`
	TotalWithMarkup   decimal.Decimal `json:"total_with_markup"`
}

type InstallmentListResponse struct {
	Data []InstallmentRow `json:"data"`
}
