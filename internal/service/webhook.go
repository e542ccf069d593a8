package service

import (
	"context"
	"fmt"
	"time"

	"jikgusignalstore/internal/dto"
	"jikgusignalstore/internal/model"
	"jikgusignalstore/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var knownEventTypes = map[string]bool{
	"payment.completed": true,
	"payment.failed":    true,
	"payment.pending":   true,
}

type WebhookService interface {
	RecordPaymentEvent(ctx context.Context, event *dto.PaymentWebhookEvent, raw []byte) error
}

type webhookServiceImpl struct {
	db               *gorm.DB
	webhookEventRepo repository.WebhookEventRepository
	logger           *zap.Logger
}

func NewWebhookService(db *gorm.DB, webhookEventRepo repository.WebhookEventRepository, logger *zap.Logger) WebhookService {
	return &webhookServiceImpl{
		db:               db,
		webhookEventRepo: webhookEventRepo,
		logger:           logger,
	}
}

// RecordPaymentEvent validates the event shape, logs it, and persists it for
// diagnostics. Duplicate event ids are acked without a second row. There is
// no signature check and no order state change here; capture belongs to the
// gateway integration, which does not exist yet.
func (s *webhookServiceImpl) RecordPaymentEvent(ctx context.Context, event *dto.PaymentWebhookEvent, raw []byte) error {
	if event.EventID == "" || !knownEventTypes[event.EventType] {
		return ErrUnknownWebhookShape
	}

	s.logger.Info("payment webhook received",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
	)

	// without a store we can only log and ack
	if s.db == nil {
		return nil
	}

	exists, err := s.webhookEventRepo.Exists(ctx, event.EventID)
	if err != nil {
		return fmt.Errorf("check webhook event: %w", err)
	}
	if exists {
		return nil
	}

	err = s.webhookEventRepo.Record(ctx, &model.WebhookEvent{
		ReceiptID:  uuid.NewString(),
		EventID:    event.EventID,
		EventType:  event.EventType,
		Payload:    string(raw),
		ReceivedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("record webhook event: %w", err)
	}

	return nil
}
