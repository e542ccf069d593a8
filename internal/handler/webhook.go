package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"jikgusignalstore/internal/dto"
	"jikgusignalstore/internal/service"

	"github.com/labstack/echo/v4"
)

type WebhookHandler struct {
	webhookService service.WebhookService
}

func NewWebhookHandler(webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		webhookService: webhookService,
	}
}

func (h *WebhookHandler) PaymentWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	var event dto.PaymentWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid webhook payload")
	}

	if err := h.webhookService.RecordPaymentEvent(ctx, &event, body); err != nil {
		if errors.Is(err, service.ErrUnknownWebhookShape) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return fmt.Errorf("record payment event: %w", err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "received"})
}
