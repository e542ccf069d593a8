package repository

import (
	"context"

	"jikgusignalstore/internal/model"

	"gorm.io/gorm"
)

type CartRepository interface {
	GetItemsForUser(ctx context.Context, userID string) ([]*model.CartItem, error)
	// ClaimItems deletes exactly the rows read earlier and reports how many
	// were still there. A shortfall means another checkout got to them first.
	ClaimItems(ctx context.Context, tx *gorm.DB, userID string, itemIDs []int64) (int64, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) GetItemsForUser(ctx context.Context, userID string) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) ClaimItems(ctx context.Context, tx *gorm.DB, userID string, itemIDs []int64) (int64, error) {
	result := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("id IN ?", itemIDs).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}
