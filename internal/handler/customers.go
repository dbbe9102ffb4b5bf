package handler

import (
	"net/http"

	"qistpos/internal/dto"
	"qistpos/internal/service"

	"github.com/gin-gonic/gin"
)

type CustomersHandler struct{ svc service.ReportService }

func NewCustomersHandler(svc service.ReportService) *CustomersHandler {
	return &CustomersHandler{svc: svc}
}

// List godoc
// @Summary      List customers
// @Description  Customers are created as part of sales; this is a read-only directory.
// @Tags         customers
// @Produce      json
// @Param        q     query string false "Matches name, contact number and CNIC"
// @Param        page  query int    false "Page (default 1)"
// @Param        limit query int    false "Rows per page (default 50)"
// @Success      200   {object} dto.CustomerListResponse
// @Failure      422   {object} apierror.ValidationError
// @Router       /v1/customers [get]
func (h *CustomersHandler) List(c *gin.Context) {
	var filter dto.CustomerFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListCustomers(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
