package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"qistpos/internal/dto"
	"qistpos/internal/model"
	"qistpos/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	LowStock(ctx context.Context) ([]dto.ProductResponse, error)
}

type productService struct {
	repo              repository.ProductRepository
	rdb               *redis.Client
	lowStockThreshold int
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client, lowStockThreshold int) ProductService {
	return &productService{repo: repo, rdb: rdb, lowStockThreshold: lowStockThreshold}
}

func (s *productService) Create(ctx context.Context, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p := model.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Model:       req.Model,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Description: req.Description,
		Features:    marshalList(req.Features),
		Tags:        marshalList(req.Tags),
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, &PersistenceError{Op: "create product", Err: err}
	}
	return productToResponse(&p), nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, &PersistenceError{Op: "load product", Err: err}
	}

	p.Name = req.Name
	p.Brand = req.Brand
	p.Model = req.Model
	p.Category = req.Category
	p.Price = req.Price
	p.Stock = req.Stock
	p.Description = req.Description
	p.Features = marshalList(req.Features)
	p.Tags = marshalList(req.Tags)

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, &PersistenceError{Op: "update product", Err: err}
	}

	// Drop the price-check cache entry so the next lookup sees the new price.
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, "price:"+id.String()).Err()
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, &PersistenceError{Op: "load product", Err: err}
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Op: "list products", Err: err}
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.LowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, &PersistenceError{Op: "list low stock", Err: err}
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return items, nil
}

func marshalList(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

func unmarshalList(raw string) []string {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil || values == nil {
		return []string{}
	}
	return values
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Brand:       p.Brand,
		Model:       p.Model,
		Category:    p.Category,
		Price:       p.Price,
		Stock:       p.Stock,
		Description: p.Description,
		Features:    unmarshalList(p.Features),
		Tags:        unmarshalList(p.Tags),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
