package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qistpos/internal/dto"
	"qistpos/internal/model"
	"qistpos/internal/plan"
	"qistpos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerService is the transactional record-keeping core. Every write creates
// its full set of related rows (customer, sale, witness, installments) and the
// stock decrement as one atomic unit — a failure partway leaves nothing behind.
type LedgerService interface {
	RecordCashSale(ctx context.Context, req dto.CashSaleRequest) (*dto.SaleResponse, error)
	RecordInstallmentSale(ctx context.Context, req dto.InstallmentSaleRequest, p *plan.Plan) (*dto.SaleResponse, error)
	MarkInstallmentPaid(ctx context.Context, saleID uuid.UUID, number int) error
}

type ledgerService struct {
	saleRepo        repository.SaleRepository
	customerRepo    repository.CustomerRepository
	productRepo     repository.ProductRepository
	installmentRepo repository.InstallmentRepository
	now             func() time.Time
}

func NewLedgerService(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	installmentRepo repository.InstallmentRepository,
) LedgerService {
	return &ledgerService{
		saleRepo:        saleRepo,
		customerRepo:    customerRepo,
		productRepo:     productRepo,
		installmentRepo: installmentRepo,
		now:             time.Now,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RecordCashSale ────────────────────────────────────────────────────────────

func (s *ledgerService) RecordCashSale(ctx context.Context, req dto.CashSaleRequest) (*dto.SaleResponse, error) {
	var missing []string
	missing = appendCustomerMissing(missing, req.Customer)
	if req.Quantity <= 0 {
		missing = append(missing, "quantity")
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"product_id"}}
	}

	var (
		sale     model.Sale
		customer model.Customer
		product  *model.Product
	)
	txErr := runTx(ctx, s.saleRepo.DB(), func(tx *gorm.DB) error {
		var err error
		product, err = s.productRepo.FindByIDTx(tx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s: %w", productID, ErrNotFound)
			}
			return err
		}
		if product.Stock < req.Quantity {
			return fmt.Errorf("product %s has %d in stock, %d requested: %w",
				product.Name, product.Stock, req.Quantity, ErrInsufficientStock)
		}

		customer = customerFromInput(req.Customer)
		if err := s.customerRepo.CreateTx(tx, &customer); err != nil {
			return err
		}

		sale = model.Sale{
			CustomerID: customer.ID,
			ProductID:  productID,
			SaleType:   model.SaleTypeCash,
			Amount:     req.Amount,
		}
		if err := s.saleRepo.CreateTx(tx, &sale); err != nil {
			return err
		}

		return s.productRepo.DecrementStockTx(tx, productID, req.Quantity)
	})
	if txErr != nil {
		return nil, classify("record cash sale", txErr)
	}

	resp := saleToResponse(&sale)
	resp.CustomerName = customer.Name
	resp.ProductName = product.Name
	return resp, nil
}

// ── RecordInstallmentSale ─────────────────────────────────────────────────────
// The caller computes the schedule via plan.Compute and hands it in; the
// ledger persists it verbatim: sale, one witness, count+1 installment rows
// (entry 1 already Paid), and a single-unit stock decrement.

func (s *ledgerService) RecordInstallmentSale(ctx context.Context, req dto.InstallmentSaleRequest, p *plan.Plan) (*dto.SaleResponse, error) {
	var missing []string
	missing = appendCustomerMissing(missing, req.Customer)
	if req.Witness.Name == "" {
		missing = append(missing, "witness.name")
	}
	if req.Witness.CNIC == "" {
		missing = append(missing, "witness.cnic")
	}
	if req.Witness.Address == "" {
		missing = append(missing, "witness.address")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}
	if p == nil || len(p.Entries) != p.InstallmentCount+1 {
		return nil, fmt.Errorf("%w: schedule does not match installment count", plan.ErrInvalidInput)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"product_id"}}
	}

	var (
		sale     model.Sale
		customer model.Customer
		product  *model.Product
	)
	txErr := runTx(ctx, s.saleRepo.DB(), func(tx *gorm.DB) error {
		var err error
		product, err = s.productRepo.FindByIDTx(tx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %s: %w", productID, ErrNotFound)
			}
			return err
		}
		// Installment sales always move exactly one unit.
		if product.Stock < 1 {
			return fmt.Errorf("product %s is out of stock: %w", product.Name, ErrInsufficientStock)
		}

		customer = customerFromInput(req.Customer)
		if err := s.customerRepo.CreateTx(tx, &customer); err != nil {
			return err
		}

		markup := p.MarkupPercent
		total := p.TotalWithMarkup
		advance := p.AdvancePayment
		count := p.InstallmentCount

		sale = model.Sale{
			CustomerID:       customer.ID,
			ProductID:        productID,
			SaleType:         model.SaleTypeInstallment,
			Amount:           p.Principal,
			MarkupPercentage: &markup,
			TotalWithMarkup:  &total,
			AdvancePayment:   &advance,
			InstallmentCount: &count,
			Witness: &model.Witness{
				Name:    req.Witness.Name,
				CNIC:    req.Witness.CNIC,
				Address: req.Witness.Address,
			},
		}
		paidAt := s.now()
		for _, e := range p.Entries {
			inst := model.Installment{
				InstallmentNumber: e.Number,
				Amount:            e.Amount,
				DueDate:           e.DueDate,
				Status:            e.Status,
				RemainingBalance:  e.RemainingBalance,
			}
			if e.Status == plan.StatusPaid {
				inst.PaidDate = &paidAt
			}
			sale.Installments = append(sale.Installments, inst)
		}

		if err := s.saleRepo.CreateTx(tx, &sale); err != nil {
			return err
		}

		return s.productRepo.DecrementStockTx(tx, productID, 1)
	})
	if txErr != nil {
		return nil, classify("record installment sale", txErr)
	}

	resp := saleToResponse(&sale)
	resp.CustomerName = customer.Name
	resp.ProductName = product.Name
	return resp, nil
}

// ── MarkInstallmentPaid ───────────────────────────────────────────────────────

// MarkInstallmentPaid flips the matching row to Paid and stamps today's date.
// Re-marking an already-Paid row re-stamps the date — current behavior kept
// from the previous system, not a contract.
func (s *ledgerService) MarkInstallmentPaid(ctx context.Context, saleID uuid.UUID, number int) error {
	rows, err := s.installmentRepo.MarkPaid(ctx, saleID, number, s.now())
	if err != nil {
		return &PersistenceError{Op: "mark installment paid", Err: err}
	}
	if rows == 0 {
		return fmt.Errorf("installment %d of sale %s: %w", number, saleID, ErrNotFound)
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func appendCustomerMissing(missing []string, c dto.CustomerInput) []string {
	if c.Name == "" {
		missing = append(missing, "customer.name")
	}
	if c.ContactNumber == "" {
		missing = append(missing, "customer.contact_number")
	}
	if c.Address == "" {
		missing = append(missing, "customer.address")
	}
	return missing
}

func customerFromInput(in dto.CustomerInput) model.Customer {
	return model.Customer{
		Name:          in.Name,
		ContactNumber: in.ContactNumber,
		CNIC:          in.CNIC,
		Address:       in.Address,
	}
}

// classify keeps typed business errors intact and wraps everything else as a
// persistence failure.
func classify(op string, err error) error {
	var verr *ValidationError
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, plan.ErrInvalidInput) || errors.As(err, &verr) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:               s.ID.String(),
		SaleType:         s.SaleType,
		CustomerID:       s.CustomerID.String(),
		ProductID:        s.ProductID.String(),
		Amount:           s.Amount,
		MarkupPercentage: s.MarkupPercentage,
		TotalWithMarkup:  s.TotalWithMarkup,
		AdvancePayment:   s.AdvancePayment,
		InstallmentCount: s.InstallmentCount,
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
	}
	for _, inst := range s.Installments {
		resp.Installments = append(resp.Installments, dto.InstallmentEntryResponse{
			Number:           inst.InstallmentNumber,
			DueDate:          inst.DueDate.Format("2006-01-02"),
			Amount:           inst.Amount,
			Status:           inst.Status,
			RemainingBalance: inst.RemainingBalance,
		})
	}
	return resp
}
