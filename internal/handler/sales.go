package handler

import (
	"net/http"
	"time"

	"qistpos/internal/apierror"
	"qistpos/internal/dto"
	"qistpos/internal/plan"
	"qistpos/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct {
	ledger  service.LedgerService
	reports service.ReportService
}

func NewSalesHandler(ledger service.LedgerService, reports service.ReportService) *SalesHandler {
	return &SalesHandler{ledger: ledger, reports: reports}
}

// RecordCashSale godoc
// @Summary      Record a cash sale
// @Description  Creates the customer and sale rows and decrements stock in one transaction.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body dto.CashSaleRequest true "Sale detail"
// @Success      201  {object} dto.SaleResponse
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/sales/cash [post]
func (h *SalesHandler) RecordCashSale(c *gin.Context) {
	var req dto.CashSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.ledger.RecordCashSale(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RecordInstallmentSale godoc
// @Summary      Record an installment sale
// @Description  Computes the payment schedule, then persists customer, sale, witness and all installment rows atomically. Entry 1 is the advance, recorded as already paid.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body dto.InstallmentSaleRequest true "Sale detail with plan inputs"
// @Success      201  {object} dto.SaleResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/sales/installment [post]
func (h *SalesHandler) RecordInstallmentSale(c *gin.Context) {
	var req dto.InstallmentSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	p, err := plan.Compute(req.Amount, req.MarkupPercentage, req.AdvancePayment, req.InstallmentCount, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	resp, err := h.ledger.RecordInstallmentSale(c.Request.Context(), req, p)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// PreviewPlan godoc
// @Summary      Preview an installment schedule
// @Description  Pure calculation — nothing is persisted and no stock is touched.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body dto.PlanPreviewRequest true "Plan inputs"
// @Success      200  {object} plan.Plan
// @Failure      400  {object} apierror.APIError
// @Router       /v1/sales/installment/preview [post]
func (h *SalesHandler) PreviewPlan(c *gin.Context) {
	var req dto.PlanPreviewRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := plan.Compute(req.Amount, req.MarkupPercentage, req.AdvancePayment, req.InstallmentCount, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, p)
}

// SalesSummary godoc
// @Summary      Aggregate sale totals
// @Description  Counts and totals per sale type over an optional inclusive date range. Cash sales total their amount, installment sales their total with markup.
// @Tags         sales
// @Produce      json
// @Param        start query string false "Start date YYYY-MM-DD"
// @Param        end   query string false "End date YYYY-MM-DD"
// @Success      200   {object} dto.SummaryResponse
// @Failure      422   {object} apierror.ValidationError
// @Router       /v1/sales/summary [get]
func (h *SalesHandler) SalesSummary(c *gin.Context) {
	var filter dto.SummaryFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.reports.SalesSummary(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
