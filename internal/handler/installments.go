package handler

import (
	"net/http"
	"strconv"

	"qistpos/internal/apierror"
	"qistpos/internal/dto"
	"qistpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InstallmentsHandler struct {
	ledger  service.LedgerService
	reports service.ReportService
}

func NewInstallmentsHandler(ledger service.LedgerService, reports service.ReportService) *InstallmentsHandler {
	return &InstallmentsHandler{ledger: ledger, reports: reports}
}

// MarkPaid godoc
// @Summary      Mark an installment as paid
// @Description  Stamps today's date on the schedule entry identified by sale and number.
// @Tags         installments
// @Produce      json
// @Param        sale_id path string true "Sale UUID"
// @Param        number  path int    true "Installment number (1 is the advance)"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/installments/{sale_id}/{number}/pay [patch]
func (h *InstallmentsHandler) MarkPaid(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("sale_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid sale id"))
		return
	}
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid installment number"))
		return
	}

	if err := h.ledger.MarkInstallmentPaid(c.Request.Context(), saleID, number); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// List godoc
// @Summary      List schedule entries across all sales
// @Description  Joined with customer and product context for the collections screen. Filterable by status and free-text search.
// @Tags         installments
// @Produce      json
// @Param        status query string false "Pending | Paid"
// @Param        q      query string false "Matches customer name and product name/brand/model"
// @Success      200    {object} dto.InstallmentListResponse
// @Failure      422    {object} apierror.ValidationError
// @Router       /v1/installments [get]
func (h *InstallmentsHandler) List(c *gin.Context) {
	var filter dto.InstallmentFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.reports.ListInstallments(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
