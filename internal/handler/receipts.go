package handler

import (
	"net/http"

	"qistpos/internal/apierror"
	"qistpos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReceiptsHandler struct{ svc service.ReceiptService }

func NewReceiptsHandler(svc service.ReceiptService) *ReceiptsHandler {
	return &ReceiptsHandler{svc: svc}
}

// Get godoc
// @Summary      Download the PDF receipt for a sale
// @Description  Renders the receipt on demand with the current business settings.
// @Tags         sales
// @Produce      application/pdf
// @Param        id path string true "Sale UUID"
// @Success      200 {file} file
// @Failure      404 {object} apierror.APIError
// @Router       /v1/sales/{id}/receipt [get]
func (h *ReceiptsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid sale id"))
		return
	}
	path, err := h.svc.Generate(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.File(path)
}
