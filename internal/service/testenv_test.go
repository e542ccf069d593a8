package service_test

import (
	"fmt"
	"testing"

	"jikgusignalstore/internal/client"
	"jikgusignalstore/internal/config"
	"jikgusignalstore/internal/model"
	"jikgusignalstore/internal/payment"
	"jikgusignalstore/internal/repository"
	"jikgusignalstore/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var testFees = config.Checkout{ShippingKRW: 10000, DutyKRW: 0, FeeKRW: 3000}

type checkoutEnv struct {
	db        *gorm.DB
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	orderRepo repository.OrderRepository
	service   service.CheckoutService
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, client.Migrate(db))

	return db
}

func newCheckoutEnv(t *testing.T) *checkoutEnv {
	t.Helper()

	db := setupTestDB(t)
	env := &checkoutEnv{
		db:        db,
		userRepo:  repository.NewUserRepository(db),
		cartRepo:  repository.NewCartRepository(db),
		orderRepo: repository.NewOrderRepository(db),
	}
	env.service = service.NewCheckoutService(
		db, testFees, payment.NewStubAuthorizer(),
		env.userRepo,
		repository.NewAddressRepository(db),
		env.cartRepo,
		env.orderRepo,
		zap.NewNop(),
	)

	return env
}

func (e *checkoutEnv) seedUser(t *testing.T, userID string) {
	t.Helper()
	require.NoError(t, e.db.Create(&model.User{ID: userID, Email: userID + "@example.com"}).Error)
}

func (e *checkoutEnv) seedAddress(t *testing.T, userID string) int64 {
	t.Helper()
	address := &model.UserAddress{
		UserID:       userID,
		Recipient:    "홍길동",
		Phone:        "010-0000-0000",
		PostalCode:   "06236",
		AddressLine1: "서울 강남구",
	}
	require.NoError(t, e.db.Create(address).Error)
	return address.ID
}

func (e *checkoutEnv) seedProduct(t *testing.T, id int64, nameKo string, priceKRW int64) {
	t.Helper()
	mall := "AMZN"
	ext := fmt.Sprintf("ext-%d", id)
	require.NoError(t, e.db.Create(&model.Product{
		ID: id, NameKo: nameKo, MallCode: &mall, ExternalID: &ext, PriceKRW: priceKRW, IsActive: true,
	}).Error)
}

func (e *checkoutEnv) seedCartItem(t *testing.T, userID string, productID, quantity, unitPriceKRW int64) {
	t.Helper()
	require.NoError(t, e.db.Create(&model.CartItem{
		UserID: userID, ProductID: productID, Quantity: quantity, PriceKRW: unitPriceKRW,
	}).Error)
}

func (e *checkoutEnv) orderCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&model.Order{}).Count(&count).Error)
	return count
}

func (e *checkoutEnv) cartSize(t *testing.T, userID string) int {
	t.Helper()
	var items []model.CartItem
	require.NoError(t, e.db.Where("user_id = ?", userID).Find(&items).Error)
	return len(items)
}
