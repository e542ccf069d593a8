package repository_test

import (
	"context"
	"testing"

	"jikgusignalstore/internal/model"
	"jikgusignalstore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct_InactiveStaysInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Product{ID: 1, NameKo: "단종 상품", PriceKRW: 1000, IsActive: false}).Error)

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, got.IsActive, "inactive product must stay inactive after insert")
}

func TestListActive_ExcludesInactive(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&model.Product{ID: 1, NameKo: "무선 이어폰", PriceKRW: 89000, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Product{ID: 2, NameKo: "단종 상품", PriceKRW: 1000, IsActive: false}).Error)

	products, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
}

func TestSeed_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))
	require.NoError(t, repo.Seed(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
