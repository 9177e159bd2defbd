package service_test

import (
	"context"
	"testing"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/model"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) (service.ProductService, *model.Category) {
	t.Helper()
	products := newMemProductRepo()
	categories := newMemCategoryRepo()
	dairy := &model.Category{Name: "Dairy", Slug: "dairy"}
	require.NoError(t, categories.Create(context.Background(), dairy))
	return service.NewProductService(products, categories), dairy
}

func TestProduct_CreateNormalizesSKU(t *testing.T) {
	svc, dairy := newProductFixture(t)

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Whole Milk 1L",
		SKU:        strPtr("  milk-1l "),
		CategoryID: dairy.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.SKU)
	assert.Equal(t, "MILK-1L", *resp.SKU)
}

func TestProduct_CreateDuplicateSKU(t *testing.T) {
	svc, dairy := newProductFixture(t)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Whole Milk 1L", SKU: strPtr("MILK-1L"), CategoryID: dairy.ID,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Skim Milk 1L", SKU: strPtr("milk-1l"), CategoryID: dairy.ID,
	})
	assert.ErrorIs(t, err, service.ErrDuplicateSKU)
}

func TestProduct_CreateUnknownCategory(t *testing.T) {
	svc, _ := newProductFixture(t)

	_, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Whole Milk 1L", CategoryID: 999,
	})
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestProduct_CreateWithoutSKU(t *testing.T) {
	svc, dairy := newProductFixture(t)

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Loose Cheese", CategoryID: dairy.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.SKU)
}

func TestProduct_UpdateMoveToUnknownCategory(t *testing.T) {
	svc, dairy := newProductFixture(t)

	created, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Whole Milk 1L", CategoryID: dairy.ID,
	})
	require.NoError(t, err)

	badCategory := uint(999)
	_, err = svc.Update(context.Background(), created.ID, dto.UpdateProductRequest{CategoryID: &badCategory})
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}

func TestProduct_ListByCategory(t *testing.T) {
	products := newMemProductRepo()
	categories := newMemCategoryRepo()
	ctx := context.Background()

	dairy := &model.Category{Name: "Dairy", Slug: "dairy"}
	pantry := &model.Category{Name: "Pantry", Slug: "pantry"}
	require.NoError(t, categories.Create(ctx, dairy))
	require.NoError(t, categories.Create(ctx, pantry))

	svc := service.NewProductService(products, categories)
	_, err := svc.Create(ctx, dto.CreateProductRequest{Name: "Whole Milk 1L", CategoryID: dairy.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CreateProductRequest{Name: "White Rice 500g", CategoryID: pantry.ID})
	require.NoError(t, err)

	list, err := svc.ListByCategory(ctx, dairy.ID, 0, 100)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Whole Milk 1L", list[0].Name)

	_, err = svc.ListByCategory(ctx, 999, 0, 100)
	assert.ErrorIs(t, err, service.ErrCategoryNotFound)
}
