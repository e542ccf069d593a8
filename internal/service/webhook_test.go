package service_test

import (
	"context"
	"testing"

	"jikgusignalstore/internal/dto"
	"jikgusignalstore/internal/model"
	"jikgusignalstore/internal/repository"
	"jikgusignalstore/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newWebhookService(db *gorm.DB) service.WebhookService {
	var repo repository.WebhookEventRepository
	if db != nil {
		repo = repository.NewWebhookEventRepository(db)
	}
	return service.NewWebhookService(db, repo, zap.NewNop())
}

func webhookEventCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&model.WebhookEvent{}).Count(&count).Error)
	return count
}

func TestRecordPaymentEvent_Persists(t *testing.T) {
	db := setupTestDB(t)
	svc := newWebhookService(db)

	raw := []byte(`{"event_id":"evt-1","event_type":"payment.completed","order_id":42}`)
	orderID := int64(42)
	err := svc.RecordPaymentEvent(context.Background(), &dto.PaymentWebhookEvent{
		EventID:   "evt-1",
		EventType: "payment.completed",
		OrderID:   &orderID,
	}, raw)
	require.NoError(t, err)

	var event model.WebhookEvent
	require.NoError(t, db.Where("event_id = ?", "evt-1").First(&event).Error)
	assert.Equal(t, "payment.completed", event.EventType)
	assert.Equal(t, string(raw), event.Payload)
	assert.NotEmpty(t, event.ReceiptID)
}

func TestRecordPaymentEvent_DuplicateAckedOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := newWebhookService(db)
	ctx := context.Background()

	event := &dto.PaymentWebhookEvent{EventID: "evt-dup", EventType: "payment.pending"}
	require.NoError(t, svc.RecordPaymentEvent(ctx, event, []byte(`{}`)))
	require.NoError(t, svc.RecordPaymentEvent(ctx, event, []byte(`{}`)))

	assert.Equal(t, int64(1), webhookEventCount(t, db))
}

func TestRecordPaymentEvent_RejectsUnknownShape(t *testing.T) {
	db := setupTestDB(t)
	svc := newWebhookService(db)
	ctx := context.Background()

	err := svc.RecordPaymentEvent(ctx, &dto.PaymentWebhookEvent{EventID: "evt-x", EventType: "refund.created"}, []byte(`{}`))
	assert.ErrorIs(t, err, service.ErrUnknownWebhookShape)

	err = svc.RecordPaymentEvent(ctx, &dto.PaymentWebhookEvent{EventType: "payment.completed"}, []byte(`{}`))
	assert.ErrorIs(t, err, service.ErrUnknownWebhookShape)

	assert.Equal(t, int64(0), webhookEventCount(t, db))
}

func TestRecordPaymentEvent_NoStoreStillAcks(t *testing.T) {
	svc := newWebhookService(nil)

	err := svc.RecordPaymentEvent(context.Background(), &dto.PaymentWebhookEvent{
		EventID:   "evt-2",
		EventType: "payment.failed",
	}, []byte(`{}`))
	assert.NoError(t, err)
}
