package service

import (
	"context"
	"errors"
	"fmt"

	"jikgusignalstore/internal/dto"
	"jikgusignalstore/internal/repository"

	"gorm.io/gorm"
)

// OrderQueryService serves the read-only order history endpoints. Writes go
// through CheckoutService only.
type OrderQueryService interface {
	ListOrders(ctx context.Context, userID string) ([]*dto.OrderSummary, error)
	GetOrder(ctx context.Context, orderID int64) (*dto.OrderDetailResponse, error)
}

type orderQueryServiceImpl struct {
	db        *gorm.DB
	orderRepo repository.OrderRepository
}

func NewOrderQueryService(db *gorm.DB, orderRepo repository.OrderRepository) OrderQueryService {
	return &orderQueryServiceImpl{
		db:        db,
		orderRepo: orderRepo,
	}
}

func (s *orderQueryServiceImpl) ListOrders(ctx context.Context, userID string) ([]*dto.OrderSummary, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	orders, err := s.orderRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	summaries := make([]*dto.OrderSummary, len(orders))
	for i, o := range orders {
		summaries[i] = &dto.OrderSummary{
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			TotalPayKRW: o.TotalPayKRW,
			CreatedAt:   o.CreatedAt,
		}
	}

	return summaries, nil
}

func (s *orderQueryServiceImpl) GetOrder(ctx context.Context, orderID int64) (*dto.OrderDetailResponse, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load order: %w", err)
	}

	items, err := s.orderRepo.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}

	itemViews := make([]dto.OrderItemView, len(items))
	for i, item := range items {
		itemViews[i] = dto.OrderItemView{
			ProductID:    item.ProductID,
			MallCode:     item.MallCode,
			ExternalID:   item.ExternalID,
			NameSnapshot: item.NameSnapshot,
			Quantity:     item.Quantity,
			UnitPriceKRW: item.UnitPriceKRW,
			SubtotalKRW:  item.SubtotalKRW,
		}
	}

	return &dto.OrderDetailResponse{
		OrderID:          order.ID,
		OrderNumber:      order.OrderNumber,
		Status:           order.Status,
		PaymentStatus:    order.PaymentStatus,
		TotalProductKRW:  order.TotalProductKRW,
		TotalShippingKRW: order.TotalShippingKRW,
		TotalDutyKRW:     order.TotalDutyKRW,
		TotalFeeKRW:      order.TotalFeeKRW,
		TotalPayKRW:      order.TotalPayKRW,
		CreatedAt:        order.CreatedAt,
		Items:            itemViews,
	}, nil
}
