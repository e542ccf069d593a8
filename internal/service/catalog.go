package service

import (
	"context"
	"errors"
	"fmt"

	"jikgusignalstore/internal/dto"
	"jikgusignalstore/internal/model"
	"jikgusignalstore/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]*dto.ProductView, error)
	GetProduct(ctx context.Context, productID int64) (*dto.ProductView, error)
}

type catalogServiceImpl struct {
	db          *gorm.DB
	productRepo repository.ProductRepository
}

func NewCatalogService(db *gorm.DB, productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{
		db:          db,
		productRepo: productRepo,
	}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context) ([]*dto.ProductView, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	views := make([]*dto.ProductView, len(products))
	for i, p := range products {
		views[i] = productView(p)
	}

	return views, nil
}

func (s *catalogServiceImpl) GetProduct(ctx context.Context, productID int64) (*dto.ProductView, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load product: %w", err)
	}

	return productView(product), nil
}

func productView(p *model.Product) *dto.ProductView {
	return &dto.ProductView{
		ID:          p.ID,
		ExternalID:  p.ExternalID,
		MallCode:    p.MallCode,
		NameKo:      p.NameKo,
		Brand:       p.Brand,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		PriceKRW:    p.PriceKRW,
		StockStatus: p.StockStatus,
	}
}
