package service_test

import (
	"context"
	"errors"
	"testing"

	"jikgusignalstore/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countFunc func(ctx context.Context) (int64, error)

func (f countFunc) Count(ctx context.Context) (int64, error) { return f(ctx) }

func fixedCount(n int64) countFunc {
	return func(context.Context) (int64, error) { return n, nil }
}

func failingCount() countFunc {
	return func(context.Context) (int64, error) { return 0, errors.New("table scan failed") }
}

func TestAdminStats(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewStatsService(db, fixedCount(7), fixedCount(3), fixedCount(12), zap.NewNop())

	stats, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(12), stats.TotalProducts)
}

func TestAdminStats_FailedCountReportsZero(t *testing.T) {
	db := setupTestDB(t)
	svc := service.NewStatsService(db, failingCount(), fixedCount(3), failingCount(), zap.NewNop())

	stats, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(0), stats.TotalProducts)
}

func TestAdminStats_StoreUnavailable(t *testing.T) {
	svc := service.NewStatsService(nil, fixedCount(1), fixedCount(1), fixedCount(1), zap.NewNop())

	_, err := svc.AdminStats(context.Background())
	assert.ErrorIs(t, err, service.ErrStoreUnavailable)
}
