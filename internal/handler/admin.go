package handler

import (
	"net/http"

	"jikgusignalstore/internal/service"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct {
	statsService service.StatsService
}

func NewAdminHandler(statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		statsService: statsService,
	}
}

func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.statsService.AdminStats(ctx)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, stats)
}
