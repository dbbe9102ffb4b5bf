package plan

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var start = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func TestCompute_WorkedExample(t *testing.T) {
	// 10000 principal, 10% markup, 1000 advance, 6 installments
	p, err := Compute(d("10000"), d("10"), d("1000"), 6, start)
	require.NoError(t, err)

	assert.Equal(t, "1000", p.MarkupAmount.String())
	assert.Equal(t, "11000", p.TotalWithMarkup.String())
	assert.Equal(t, "1666.67", p.InstallmentAmount.String())
	require.Len(t, p.Entries, 7)

	// Entry 1 is the advance: paid today, balance shown before amortization
	first := p.Entries[0]
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, StatusPaid, first.Status)
	assert.Equal(t, "1000", first.Amount.String())
	assert.Equal(t, "10000", first.RemainingBalance.String())
	assert.True(t, first.DueDate.Equal(start))

	// Final balance clamps to zero (6 × 1666.67 = 10000.02 overshoots by 2 cents)
	last := p.Entries[6]
	assert.Equal(t, 7, last.Number)
	assert.True(t, last.RemainingBalance.IsZero())
}

func TestCompute_DueDateCadence(t *testing.T) {
	p, err := Compute(d("9000"), d("0"), d("0"), 3, start)
	require.NoError(t, err)
	require.Len(t, p.Entries, 4)

	for i, e := range p.Entries[1:] {
		want := start.AddDate(0, 0, (i+1)*30)
		assert.True(t, e.DueDate.Equal(want), "entry %d due %s, want %s", e.Number, e.DueDate, want)
		assert.Equal(t, StatusPending, e.Status)
	}
}

func TestCompute_BalanceNonIncreasingAndNonNegative(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		markup    string
		advance   string
		count     int
	}{
		{"even split", "12000", "0", "0", 12},
		{"residue in last entry", "10000", "10", "1000", 6},
		{"one installment", "500", "5", "100", 1},
		{"tiny amounts", "0.10", "0", "0.01", 3},
		{"full advance", "1000", "20", "1200", 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Compute(d(tc.principal), d(tc.markup), d(tc.advance), tc.count, start)
			require.NoError(t, err)
			require.Len(t, p.Entries, tc.count+1)

			prev := p.Entries[0].RemainingBalance
			for _, e := range p.Entries[1:] {
				assert.False(t, e.RemainingBalance.IsNegative(), "entry %d balance negative", e.Number)
				assert.True(t, e.RemainingBalance.LessThanOrEqual(prev), "entry %d balance increased", e.Number)
				prev = e.RemainingBalance
			}
			assert.True(t, p.Entries[tc.count].RemainingBalance.IsZero())
		})
	}
}

func TestCompute_AmountsSumToTotalWithinTolerance(t *testing.T) {
	p, err := Compute(d("10000"), d("10"), d("1000"), 6, start)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, e := range p.Entries {
		sum = sum.Add(e.Amount)
	}
	// Rounding each installment to a cent bounds the drift by one cent × count
	tolerance := d("0.01").Mul(decimal.NewFromInt(int64(p.InstallmentCount)))
	assert.True(t, sum.Sub(p.TotalWithMarkup).Abs().LessThanOrEqual(tolerance),
		"sum %s vs total %s", sum, p.TotalWithMarkup)
}

func TestCompute_RoundingIsHalfUp(t *testing.T) {
	// 100 / 3 = 33.333… → 33.33; 100.015 / 1 keeps the half-up direction
	p, err := Compute(d("100"), d("0"), d("0"), 3, start)
	require.NoError(t, err)
	assert.Equal(t, "33.33", p.InstallmentAmount.String())

	p, err = Compute(d("100.01"), d("0"), d("0"), 2, start)
	require.NoError(t, err)
	// 50.005 rounds away from zero to 50.01
	assert.Equal(t, "50.01", p.InstallmentAmount.String())
}

func TestCompute_InvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		principal string
		markup    string
		advance   string
		count     int
	}{
		{"zero count", "1000", "10", "0", 0},
		{"negative count", "1000", "10", "0", -1},
		{"zero principal", "0", "10", "0", 6},
		{"negative principal", "-5", "10", "0", 6},
		{"negative advance", "1000", "10", "-1", 6},
		{"advance above total", "1000", "10", "1100.01", 6},
		{"markup negative", "1000", "-1", "0", 6},
		{"markup above 100", "1000", "100.5", "0", 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(d(tc.principal), d(tc.markup), d(tc.advance), tc.count, start)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCompute_AdvanceEqualToTotalIsAllowed(t *testing.T) {
	p, err := Compute(d("1000"), d("10"), d("1100"), 2, start)
	require.NoError(t, err)
	assert.True(t, p.InstallmentAmount.IsZero())
	for _, e := range p.Entries[1:] {
		assert.True(t, e.RemainingBalance.IsZero())
	}
}
