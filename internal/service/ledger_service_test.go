package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"qistpos/internal/dto"
	"qistpos/internal/model"
	"qistpos/internal/plan"
	"qistpos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
// DB() returns nil, so runTx calls the body directly without a transaction.

type stubProductRepo struct {
	products  map[uuid.UUID]*model.Product
	decrement []int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Product, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	var result []model.Product
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *stubProductRepo) LowStock(_ context.Context, threshold int) ([]model.Product, error) {
	var result []model.Product
	for _, p := range r.products {
		if p.Stock <= threshold {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) DecrementStockTx(_ *gorm.DB, id uuid.UUID, qty int) error {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return gorm.ErrRecordNotFound
	}
	p.Stock -= qty
	r.decrement = append(r.decrement, qty)
	return nil
}

type stubCustomerRepo struct {
	created []model.Customer
}

func (r *stubCustomerRepo) CreateTx(_ *gorm.DB, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.created = append(r.created, *c)
	return nil
}

func (r *stubCustomerRepo) List(_ context.Context, _ dto.CustomerFilter) ([]model.Customer, int64, error) {
	return r.created, int64(len(r.created)), nil
}

type stubSaleRepo struct {
	sales     []model.Sale
	createErr error
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	r.sales = append(r.sales, *s)
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	for i := range r.sales {
		if r.sales[i].ID == id {
			return &r.sales[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) Summary(_ context.Context, _ dto.SummaryFilter) ([]dto.SummaryLine, error) {
	return nil, nil
}

type stubInstallmentRepo struct {
	markedSale   uuid.UUID
	markedNumber int
	markedAt     time.Time
	rows         int64
	err          error
}

func (r *stubInstallmentRepo) MarkPaid(_ context.Context, saleID uuid.UUID, number int, paidDate time.Time) (int64, error) {
	r.markedSale = saleID
	r.markedNumber = number
	r.markedAt = paidDate
	return r.rows, r.err
}

func (r *stubInstallmentRepo) ListJoined(_ context.Context, _ dto.InstallmentFilter) ([]repository.JoinedInstallment, error) {
	return nil, nil
}

// ── Fixtures ─────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func newLedgerFixture(t *testing.T) (*ledgerService, *stubSaleRepo, *stubCustomerRepo, *stubProductRepo, *stubInstallmentRepo, uuid.UUID) {
	t.Helper()
	products := newStubProductRepo()
	customers := &stubCustomerRepo{}
	sales := &stubSaleRepo{}
	installments := &stubInstallmentRepo{rows: 1}

	productID := uuid.New()
	products.products[productID] = &model.Product{
		ID:    productID,
		Name:  "Refrigerator",
		Brand: "Haier",
		Model: "HRF-336",
		Price: dec("85000"),
		Stock: 4,
	}

	svc := NewLedgerService(sales, customers, products, installments).(*ledgerService)
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	return svc, sales, customers, products, installments, productID
}

func cashRequest(productID uuid.UUID) dto.CashSaleRequest {
	return dto.CashSaleRequest{
		Customer: dto.CustomerInput{
			Name:          "Ahmed Khan",
			ContactNumber: "0300-1234567",
			Address:       "House 12, Street 4, Lahore",
		},
		ProductID: productID.String(),
		Quantity:  2,
		Amount:    dec("170000"),
	}
}

func installmentRequest(productID uuid.UUID) dto.InstallmentSaleRequest {
	return dto.InstallmentSaleRequest{
		Customer: dto.CustomerInput{
			Name:          "Fatima Bibi",
			ContactNumber: "0321-7654321",
			Address:       "Flat 3B, Gulberg, Lahore",
		},
		Witness: dto.WitnessInput{
			Name:    "Imran Ali",
			CNIC:    "35202-1234567-1",
			Address: "Shop 9, Anarkali Bazaar",
		},
		ProductID:        productID.String(),
		Amount:           dec("10000"),
		MarkupPercentage: dec("10"),
		AdvancePayment:   dec("1000"),
		InstallmentCount: 6,
	}
}

// ── RecordCashSale ───────────────────────────────────────────────────────────

func TestRecordCashSale(t *testing.T) {
	svc, sales, customers, products, _, productID := newLedgerFixture(t)

	resp, err := svc.RecordCashSale(context.Background(), cashRequest(productID))
	require.NoError(t, err)

	assert.Equal(t, model.SaleTypeCash, resp.SaleType)
	assert.Equal(t, "Ahmed Khan", resp.CustomerName)
	assert.Equal(t, "Refrigerator", resp.ProductName)
	assert.True(t, resp.Amount.Equal(dec("170000")))
	assert.Nil(t, resp.MarkupPercentage)
	assert.Nil(t, resp.InstallmentCount)
	assert.Empty(t, resp.Installments)

	require.Len(t, sales.sales, 1)
	require.Len(t, customers.created, 1)
	assert.Equal(t, 2, products.products[productID].Stock)
}

func TestRecordCashSaleMissingFields(t *testing.T) {
	svc, sales, _, _, _, productID := newLedgerFixture(t)

	req := cashRequest(productID)
	req.Customer.Name = ""
	req.Customer.Address = ""
	req.Quantity = 0

	_, err := svc.RecordCashSale(context.Background(), req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"customer.name", "customer.address", "quantity"}, verr.Fields)
	assert.Empty(t, sales.sales)
}

func TestRecordCashSaleBadProductID(t *testing.T) {
	svc, _, _, _, _, productID := newLedgerFixture(t)

	req := cashRequest(productID)
	req.ProductID = "not-a-uuid"

	_, err := svc.RecordCashSale(context.Background(), req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"product_id"}, verr.Fields)
}

func TestRecordCashSaleProductNotFound(t *testing.T) {
	svc, _, _, _, _, _ := newLedgerFixture(t)

	req := cashRequest(uuid.New())
	_, err := svc.RecordCashSale(context.Background(), req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordCashSaleInsufficientStock(t *testing.T) {
	svc, sales, customers, products, _, productID := newLedgerFixture(t)

	req := cashRequest(productID)
	req.Quantity = 5 // only 4 in stock

	_, err := svc.RecordCashSale(context.Background(), req)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// Nothing written, stock untouched.
	assert.Empty(t, sales.sales)
	assert.Empty(t, customers.created)
	assert.Equal(t, 4, products.products[productID].Stock)
}

func TestRecordCashSalePersistenceFailure(t *testing.T) {
	svc, sales, _, _, _, productID := newLedgerFixture(t)
	sales.createErr = errors.New("connection reset")

	_, err := svc.RecordCashSale(context.Background(), cashRequest(productID))
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "record cash sale", perr.Op)
}

func TestRecordCashSaleNoCustomerDedup(t *testing.T) {
	svc, _, customers, _, _, productID := newLedgerFixture(t)

	req := cashRequest(productID)
	req.Quantity = 1

	_, err := svc.RecordCashSale(context.Background(), req)
	require.NoError(t, err)
	_, err = svc.RecordCashSale(context.Background(), req)
	require.NoError(t, err)

	// Identical details still produce two customer rows.
	require.Len(t, customers.created, 2)
	assert.NotEqual(t, customers.created[0].ID, customers.created[1].ID)
}

// ── RecordInstallmentSale ────────────────────────────────────────────────────

func TestRecordInstallmentSale(t *testing.T) {
	svc, sales, _, products, _, productID := newLedgerFixture(t)

	req := installmentRequest(productID)
	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	p, err := plan.Compute(req.Amount, req.MarkupPercentage, req.AdvancePayment, req.InstallmentCount, start)
	require.NoError(t, err)

	resp, err := svc.RecordInstallmentSale(context.Background(), req, p)
	require.NoError(t, err)

	assert.Equal(t, model.SaleTypeInstallment, resp.SaleType)
	require.NotNil(t, resp.TotalWithMarkup)
	assert.True(t, resp.TotalWithMarkup.Equal(dec("11000")))
	require.NotNil(t, resp.InstallmentCount)
	assert.Equal(t, 6, *resp.InstallmentCount)
	require.Len(t, resp.Installments, 7)

	// Entry 1 is the advance, born Paid; the rest pend.
	assert.Equal(t, plan.StatusPaid, resp.Installments[0].Status)
	for _, e := range resp.Installments[1:] {
		assert.Equal(t, plan.StatusPending, e.Status)
	}

	require.Len(t, sales.sales, 1)
	persisted := sales.sales[0]
	require.NotNil(t, persisted.Witness)
	assert.Equal(t, "Imran Ali", persisted.Witness.Name)
	require.Len(t, persisted.Installments, 7)
	require.NotNil(t, persisted.Installments[0].PaidDate)
	assert.Equal(t, svc.now(), *persisted.Installments[0].PaidDate)
	assert.Nil(t, persisted.Installments[1].PaidDate)

	// Exactly one unit leaves stock regardless of plan size.
	assert.Equal(t, 3, products.products[productID].Stock)
}

func TestRecordInstallmentSaleMissingWitness(t *testing.T) {
	svc, sales, _, _, _, productID := newLedgerFixture(t)

	req := installmentRequest(productID)
	req.Witness = dto.WitnessInput{}

	_, err := svc.RecordInstallmentSale(context.Background(), req, nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"witness.name", "witness.cnic", "witness.address"}, verr.Fields)
	assert.Empty(t, sales.sales)
}

func TestRecordInstallmentSaleNilPlan(t *testing.T) {
	svc, _, _, _, _, productID := newLedgerFixture(t)

	_, err := svc.RecordInstallmentSale(context.Background(), installmentRequest(productID), nil)
	assert.ErrorIs(t, err, plan.ErrInvalidInput)
}

func TestRecordInstallmentSaleOutOfStock(t *testing.T) {
	svc, sales, _, products, _, productID := newLedgerFixture(t)
	products.products[productID].Stock = 0

	req := installmentRequest(productID)
	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	p, err := plan.Compute(req.Amount, req.MarkupPercentage, req.AdvancePayment, req.InstallmentCount, start)
	require.NoError(t, err)

	_, err = svc.RecordInstallmentSale(context.Background(), req, p)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Empty(t, sales.sales)
}

// ── MarkInstallmentPaid ──────────────────────────────────────────────────────

func TestMarkInstallmentPaid(t *testing.T) {
	svc, _, _, _, installments, _ := newLedgerFixture(t)

	saleID := uuid.New()
	err := svc.MarkInstallmentPaid(context.Background(), saleID, 3)
	require.NoError(t, err)

	assert.Equal(t, saleID, installments.markedSale)
	assert.Equal(t, 3, installments.markedNumber)
	assert.Equal(t, svc.now(), installments.markedAt)
}

func TestMarkInstallmentPaidNotFound(t *testing.T) {
	svc, _, _, _, installments, _ := newLedgerFixture(t)
	installments.rows = 0

	err := svc.MarkInstallmentPaid(context.Background(), uuid.New(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkInstallmentPaidStorageError(t *testing.T) {
	svc, _, _, _, installments, _ := newLedgerFixture(t)
	installments.err = errors.New("connection reset")

	err := svc.MarkInstallmentPaid(context.Background(), uuid.New(), 1)
	var perr *PersistenceError
	require.ErrorAs(t, err, &perr)
}
