package handler

import (
	"net/http"

	"qistpos/internal/dto"
	"qistpos/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get godoc
// @Summary      Business identity printed on receipts
// @Tags         settings
// @Produce      json
// @Success      200 {object} dto.SettingsResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Save business identity
// @Description  Upserts the single settings row; the first save creates it.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body body dto.SettingsRequest true "Business detail"
// @Success      200  {object} dto.SettingsResponse
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
