package repository

import (
	"context"

	"jikgusignalstore/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	// FindByIDForUser matches on both keys so a caller can never check out
	// to an address owned by someone else.
	FindByIDForUser(ctx context.Context, addressID int64, userID string) (*model.UserAddress, error)
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{
		db: db,
	}
}

func (r *addressRepoImpl) FindByIDForUser(ctx context.Context, addressID int64, userID string) (*model.UserAddress, error) {
	var address model.UserAddress
	err := r.db.WithContext(ctx).
		Where("id = ?", addressID).
		Where("user_id = ?", userID).
		First(&address).Error

	if err != nil {
		return nil, err
	}

	return &address, nil
}
