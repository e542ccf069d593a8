package handler

import (
	"net/http"
	"strconv"

	"jikgusignalstore/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderQueryService service.OrderQueryService
}

func NewOrderHandler(orderQueryService service.OrderQueryService) *OrderHandler {
	return &OrderHandler{
		orderQueryService: orderQueryService,
	}
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID := c.QueryParam("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing user_id")
	}

	orders, err := h.orderQueryService.ListOrders(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orderQueryService.GetOrder(ctx, orderID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, order)
}
