// Package plan computes installment payment schedules. It is a pure leaf:
// no storage, no clocks beyond the caller-supplied start date, safe to call
// concurrently — the preview endpoint runs it without committing anything.
package plan

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Schedule entry statuses, shared with the persisted installment rows.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// ErrInvalidInput is wrapped by every parameter-validation failure of Compute.
var ErrInvalidInput = errors.New("invalid plan input")

// Entry is one dated payment of a schedule. Entry 1 is always the advance,
// due immediately and already Paid.
type Entry struct {
	Number           int             `json:"number"`
	DueDate          time.Time       `json:"due_date"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// Plan is a fully resolved schedule plus its derived financial figures.
type Plan struct {
	Principal         decimal.Decimal `json:"principal"`
	MarkupPercent     decimal.Decimal `json:"markup_percent"`
	MarkupAmount      decimal.Decimal `json:"markup_amount"`
	TotalWithMarkup   decimal.Decimal `json:"total_with_markup"`
	AdvancePayment    decimal.Decimal `json:"advance_payment"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	InstallmentCount  int             `json:"installment_count"`
	Entries           []Entry         `json:"entries"`
}

var hundred = decimal.NewFromInt(100)

// Compute amortizes principal plus markup across installmentCount monthly
// payments with the advance as entry 1.
//
//	markupAmount      = principal × markupPercent / 100
//	totalWithMarkup   = principal + markupAmount
//	installmentAmount = round((totalWithMarkup − advance) / count, 2)
//
// Rounding is half-up (half away from zero) to 2 decimals; the rounding
// residue is absorbed by the final entry, whose remaining balance is clamped
// at zero. Due dates follow a fixed 30-day cadence from startDate, not
// calendar months.
//
// Entry 1 carries the balance outstanding before any scheduled payment is
// applied, i.e. the advance does not subtract from its displayed balance.
func Compute(principal, markupPercent, advance decimal.Decimal, installmentCount int, startDate time.Time) (*Plan, error) {
	if installmentCount <= 0 {
		return nil, fmt.Errorf("%w: installment count must be positive, got %d", ErrInvalidInput, installmentCount)
	}
	if principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal must be positive, got %s", ErrInvalidInput, principal)
	}
	if markupPercent.IsNegative() || markupPercent.GreaterThan(hundred) {
		return nil, fmt.Errorf("%w: markup percent must be within [0,100], got %s", ErrInvalidInput, markupPercent)
	}
	if advance.IsNegative() {
		return nil, fmt.Errorf("%w: advance payment must not be negative, got %s", ErrInvalidInput, advance)
	}

	markupAmount := principal.Mul(markupPercent).Div(hundred)
	totalWithMarkup := principal.Add(markupAmount)
	if advance.GreaterThan(totalWithMarkup) {
		return nil, fmt.Errorf("%w: advance payment %s exceeds total with markup %s", ErrInvalidInput, advance, totalWithMarkup)
	}

	remaining := totalWithMarkup.Sub(advance)
	installmentAmount := remaining.DivRound(decimal.NewFromInt(int64(installmentCount)), 2)

	entries := make([]Entry, 0, installmentCount+1)
	entries = append(entries, Entry{
		Number:           1,
		DueDate:          startDate,
		Amount:           advance,
		Status:           StatusPaid,
		RemainingBalance: remaining,
	})

	balance := remaining
	for i := 0; i < installmentCount; i++ {
		balance = balance.Sub(installmentAmount)
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		entries = append(entries, Entry{
			Number:           i + 2,
			DueDate:          startDate.AddDate(0, 0, (i+1)*30),
			Amount:           installmentAmount,
			Status:           StatusPending,
			RemainingBalance: balance,
		})
	}

	return &Plan{
		Principal:         principal,
		MarkupPercent:     markupPercent,
		MarkupAmount:      markupAmount,
		TotalWithMarkup:   totalWithMarkup,
		AdvancePayment:    advance,
		InstallmentAmount: installmentAmount,
		InstallmentCount:  installmentCount,
		Entries:           entries,
	}, nil
}
