package dto

import "github.com/shopspring/decimal"

// SummaryFilter is bound from the query string of GET /v1/sales/summary.
// Dates are inclusive YYYY-MM-DD; both empty means all time.
type SummaryFilter struct {
	Start string `form:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `form:"end"   validate:"omitempty,datetime=2006-01-02"`
}

// SummaryLine aggregates sales of one type. Cash sales total their amount,
// installment sales their total with markup.
type SummaryLine struct {
	SaleType    string          `json:"sale_type"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type SummaryResponse struct {
	Data []SummaryLine `json:"data"`
}
