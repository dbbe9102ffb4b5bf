package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"qistpos/internal/apierror"
	"qistpos/internal/dto"
	"qistpos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 5 * time.Minute

// PriceHandler serves the counter-side price check endpoint.
// Read-only, no side effects beyond warming the cache.
type PriceHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewPriceHandler(repo repository.ProductRepository, rdb *redis.Client) *PriceHandler {
	return &PriceHandler{repo: repo, rdb: rdb}
}

// GetPrice godoc
// @Summary      Price check by product id
// @Description  Served from Redis when warm; product updates invalidate the entry.
// @Tags         price
// @Produce      json
// @Param        id path string true "Product UUID"
// @Success      200 {object} dto.PriceCheckResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/price/{id} [get]
func (h *PriceHandler) GetPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid product id"))
		return
	}
	ctx := c.Request.Context()
	cacheKey := "price:" + id.String()

	// 1. Try the cache first.
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceCheckResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss, hit the database.
	product, err := h.repo.FindByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("product not found"))
		return
	}

	resp := dto.PriceCheckResponse{
		Name:     product.Name,
		Brand:    product.Brand,
		Model:    product.Model,
		Category: product.Category,
		Price:    product.Price,
		Stock:    product.Stock,
	}

	// 3. Populate the cache, best effort.
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
