package service

import (
	"context"

	"jikgusignalstore/internal/dto"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Counter is the narrow slice of a repository the stats reader needs.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type StatsService interface {
	AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)
}

type statsServiceImpl struct {
	db       *gorm.DB
	orders   Counter
	users    Counter
	products Counter
	logger   *zap.Logger
}

func NewStatsService(db *gorm.DB, orders, users, products Counter, logger *zap.Logger) StatsService {
	return &statsServiceImpl{
		db:       db,
		orders:   orders,
		users:    users,
		products: products,
		logger:   logger,
	}
}

// AdminStats reports whole-table counts. Counts are best effort: a failed
// query contributes 0 instead of failing the request.
func (s *statsServiceImpl) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}

	return &dto.AdminStatsResponse{
		TotalOrders:   s.countOrZero(ctx, "orders", s.orders),
		TotalUsers:    s.countOrZero(ctx, "users", s.users),
		TotalProducts: s.countOrZero(ctx, "products", s.products),
	}, nil
}

func (s *statsServiceImpl) countOrZero(ctx context.Context, table string, c Counter) int64 {
	count, err := c.Count(ctx)
	if err != nil {
		s.logger.Warn("count query failed, reporting zero",
			zap.String("table", table),
			zap.Error(err),
		)
		return 0
	}
	return count
}
