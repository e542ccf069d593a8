package service_test

import (
	"context"
	"testing"

	"jikgusignalstore/internal/model"
	"jikgusignalstore/internal/repository"
	"jikgusignalstore/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts_ActiveOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCatalogService(db, repository.NewProductRepository(db))

	require.NoError(t, db.Create(&model.Product{ID: 1, NameKo: "무선 이어폰", PriceKRW: 89000, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Product{ID: 2, NameKo: "단종 상품", PriceKRW: 1000, IsActive: false}).Error)

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "무선 이어폰", products[0].NameKo)
}

func TestGetProduct_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewCatalogService(db, repository.NewProductRepository(db))

	_, err := svc.GetProduct(context.Background(), 404)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetOrder_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewOrderQueryService(db, repository.NewOrderRepository(db))

	_, err := svc.GetOrder(context.Background(), 404)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCatalogAndOrders_StoreUnavailable(t *testing.T) {
	catalog := service.NewCatalogService(nil, nil)
	_, err := catalog.ListProducts(context.Background())
	assert.ErrorIs(t, err, service.ErrStoreUnavailable)

	orders := service.NewOrderQueryService(nil, nil)
	_, err = orders.ListOrders(context.Background(), "u1")
	assert.ErrorIs(t, err, service.ErrStoreUnavailable)
}
