package service

import (
	"context"
	"testing"

	"qistpos/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreateAndGet(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, 5)

	created, err := svc.Create(context.Background(), dto.ProductRequest{
		Name:     "Washing Machine",
		Brand:    "Dawlance",
		Model:    "DW-7500",
		Category: "appliances",
		Price:    dec("52000"),
		Stock:    8,
		Features: []string{"7kg", "twin tub"},
		Tags:     []string{"laundry"},
	})
	require.NoError(t, err)

	id, err := uuid.Parse(created.ID)
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Washing Machine", got.Name)
	assert.Equal(t, []string{"7kg", "twin tub"}, got.Features)
	assert.Equal(t, []string{"laundry"}, got.Tags)
	assert.True(t, got.Price.Equal(dec("52000")))
}

func TestProductCreateEmptyListsStayEmpty(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, 5)

	created, err := svc.Create(context.Background(), dto.ProductRequest{
		Name:     "Iron",
		Brand:    "Philips",
		Model:    "GC-160",
		Category: "appliances",
		Price:    dec("4500"),
		Stock:    20,
	})
	require.NoError(t, err)

	// nil inputs serialize as [] and come back as empty slices, not null.
	assert.NotNil(t, created.Features)
	assert.Empty(t, created.Features)
	assert.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)
}

func TestProductGetNotFound(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), nil, 5)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductUpdate(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, 5)

	created, err := svc.Create(context.Background(), dto.ProductRequest{
		Name: "TV", Brand: "Samsung", Model: "UA43", Category: "electronics",
		Price: dec("95000"), Stock: 3,
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	updated, err := svc.Update(context.Background(), id, dto.ProductRequest{
		Name: "TV", Brand: "Samsung", Model: "UA43", Category: "electronics",
		Price: dec("89000"), Stock: 5, Tags: []string{"sale"},
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(dec("89000")))
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, []string{"sale"}, updated.Tags)
}

func TestProductLowStock(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewProductService(repo, nil, 5)

	for _, fixture := range []struct {
		name  string
		stock int
	}{
		{"Fan", 2},
		{"Heater", 5},
		{"Cooler", 12},
	} {
		_, err := svc.Create(context.Background(), dto.ProductRequest{
			Name: fixture.name, Brand: "b", Model: "m", Category: "c",
			Price: dec("1000"), Stock: fixture.stock,
		})
		require.NoError(t, err)
	}

	low, err := svc.LowStock(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(low))
	for _, p := range low {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"Fan", "Heater"}, names)
}
