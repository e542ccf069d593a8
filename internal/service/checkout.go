package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"jikgusignalstore/internal/config"
	"jikgusignalstore/internal/dto"
	"jikgusignalstore/internal/model"
	"jikgusignalstore/internal/payment"
	"jikgusignalstore/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CheckoutService interface {
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	db          *gorm.DB
	fees        config.Checkout
	authorizer  payment.Authorizer
	userRepo    repository.UserRepository
	addressRepo repository.AddressRepository
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	logger      *zap.Logger
}

func NewCheckoutService(
	db *gorm.DB,
	fees config.Checkout,
	authorizer payment.Authorizer,
	userRepo repository.UserRepository,
	addressRepo repository.AddressRepository,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	logger *zap.Logger,
) CheckoutService {
	return &checkoutServiceImpl{
		db:          db,
		fees:        fees,
		authorizer:  authorizer,
		userRepo:    userRepo,
		addressRepo: addressRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// Checkout converts the user's cart into an order. Reads run up front; all
// writes happen inside one transaction so a failure cannot leave an order
// without items or a half-emptied cart.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidUser
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	address, err := s.addressRepo.FindByIDForUser(ctx, req.AddressID, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAddress
		}
		return nil, fmt.Errorf("load address: %w", err)
	}

	cartItems, err := s.cartRepo.GetItemsForUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	totalProduct := int64(0)
	for _, item := range cartItems {
		totalProduct += item.PriceKRW * item.Quantity
	}
	totalPay := totalProduct + s.fees.ShippingKRW + s.fees.DutyKRW + s.fees.FeeKRW

	auth, err := s.authorizer.Authorize(ctx, req.UserID, req.PaymentMethod, totalPay)
	if err != nil {
		return nil, fmt.Errorf("authorize payment: %w", err)
	}

	order := &model.Order{
		UserID:           req.UserID,
		Status:           auth.Status,
		AddressID:        &address.ID,
		PaymentMethod:    &req.PaymentMethod,
		PaymentStatus:    &auth.Status,
		TotalProductKRW:  totalProduct,
		TotalShippingKRW: s.fees.ShippingKRW,
		TotalDutyKRW:     s.fees.DutyKRW,
		TotalFeeKRW:      s.fees.FeeKRW,
		TotalPayKRW:      totalPay,
	}
	if auth.Status == payment.StatusPaid {
		now := time.Now()
		order.PaidAt = &now
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}

		// the human-readable order number is the generated id verbatim
		order.OrderNumber = strconv.FormatInt(order.ID, 10)
		if err := s.orderRepo.SetOrderNumber(ctx, tx, order.ID, order.OrderNumber); err != nil {
			return fmt.Errorf("store order number: %w", err)
		}

		itemIDs := make([]int64, len(cartItems))
		orderItems := make([]*model.OrderItem, len(cartItems))
		for i, item := range cartItems {
			itemIDs[i] = item.ID

			orderItem := &model.OrderItem{
				OrderID:      order.ID,
				ProductID:    item.ProductID,
				NameSnapshot: "Unknown Product",
				Quantity:     item.Quantity,
				UnitPriceKRW: item.PriceKRW,
				SubtotalKRW:  item.PriceKRW * item.Quantity,
			}
			if item.Product != nil {
				orderItem.MallCode = item.Product.MallCode
				orderItem.ExternalID = item.Product.ExternalID
				orderItem.NameSnapshot = item.Product.NameKo
			}
			orderItems[i] = orderItem
		}

		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}

		deleted, err := s.cartRepo.ClaimItems(ctx, tx, req.UserID, itemIDs)
		if err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		if deleted != int64(len(itemIDs)) {
			// a concurrent checkout already consumed part of this cart
			return ErrCartChanged
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("checkout completed",
		zap.String("user_id", req.UserID),
		zap.Int64("order_id", order.ID),
		zap.Int64("total_pay_krw", totalPay),
	)

	return &dto.CheckoutResponse{
		OrderID:            order.ID,
		OrderNumber:        order.OrderNumber,
		PaymentStatus:      auth.Status,
		PaymentRedirectURL: auth.RedirectURL,
	}, nil
}
