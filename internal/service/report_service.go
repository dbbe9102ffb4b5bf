package service

import (
	"context"
	"time"

	"qistpos/internal/dto"
	"qistpos/internal/repository"
)

// ReportService is the read-only query surface over the ledger: due
// installments for the collections screen, aggregate sale totals and the
// customer list.
type ReportService interface {
	ListInstallments(ctx context.Context, filter dto.InstallmentFilter) (*dto.InstallmentListResponse, error)
	SalesSummary(ctx context.Context, filter dto.SummaryFilter) (*dto.SummaryResponse, error)
	ListCustomers(ctx context.Context, filter dto.CustomerFilter) (*dto.CustomerListResponse, error)
}

type reportService struct {
	saleRepo        repository.SaleRepository
	installmentRepo repository.InstallmentRepository
	customerRepo    repository.CustomerRepository
}

func NewReportService(
	saleRepo repository.SaleRepository,
	installmentRepo repository.InstallmentRepository,
	customerRepo repository.CustomerRepository,
) ReportService {
	return &reportService{
		saleRepo:        saleRepo,
		installmentRepo: installmentRepo,
		customerRepo:    customerRepo,
	}
}

func (s *reportService) ListInstallments(ctx context.Context, filter dto.InstallmentFilter) (*dto.InstallmentListResponse, error) {
	rows, err := s.installmentRepo.ListJoined(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Op: "list installments", Err: err}
	}

	items := make([]dto.InstallmentRow, 0, len(rows))
	for _, row := range rows {
		var paidDate *string
		if row.PaidDate != nil {
			d := row.PaidDate.Format("2006-01-02")
			paidDate = &d
		}
		items = append(items, dto.InstallmentRow{
			SaleID:            row.SaleID.String(),
			InstallmentNumber: row.InstallmentNumber,
			Amount:            row.Amount,
			DueDate:           row.DueDate.Format("2006-01-02"),
			Status:            row.Status,
			PaidDate:          paidDate,
			RemainingBalance:  row.RemainingBalance,
			CustomerName:      row.CustomerName,
			ContactNumber:     row.ContactNumber,
			ProductName:       row.ProductName,
			Brand:             row.Brand,
			Model:             row.Model,
			TotalWithMarkup:   row.TotalWithMarkup,
		})
	}
	return &dto.InstallmentListResponse{Data: items}, nil
}

func (s *reportService) SalesSummary(ctx context.Context, filter dto.SummaryFilter) (*dto.SummaryResponse, error) {
	lines, err := s.saleRepo.Summary(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Op: "sales summary", Err: err}
	}
	if lines == nil {
		lines = []dto.SummaryLine{}
	}
	return &dto.SummaryResponse{Data: lines}, nil
}

func (s *reportService) ListCustomers(ctx context.Context, filter dto.CustomerFilter) (*dto.CustomerListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	customers, total, err := s.customerRepo.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Op: "list customers", Err: err}
	}

	items := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		items = append(items, dto.CustomerResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			ContactNumber: c.ContactNumber,
			CNIC:          c.CNIC,
			Address:       c.Address,
			CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.CustomerListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
