package repository

import (
	"context"

	"jikgusignalstore/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, productID int64) (*model.Product, error)
	ListActive(ctx context.Context) ([]*model.Product, error)
	Count(ctx context.Context) (int64, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func strPtr(s string) *string { return &s }

// Seed loads a couple of catalog rows for local development.
func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{ID: 1, MallCode: strPtr("AMZN"), ExternalID: strPtr("B0DEMO001"), NameKo: "무선 이어폰", Brand: strPtr("SoundCo"), PriceKRW: 89000, IsActive: true},
		{ID: 2, MallCode: strPtr("RKTN"), ExternalID: strPtr("rk-demo-002"), NameKo: "보온 텀블러", Brand: strPtr("Thermo"), PriceKRW: 32000, IsActive: true},
		{ID: 3, MallCode: strPtr("AMZN"), ExternalID: strPtr("B0DEMO003"), NameKo: "게이밍 마우스", Brand: strPtr("ClickLab"), PriceKRW: 54000, IsActive: true},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) ListActive(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error

	return count, err
}
