package handler

import (
	"errors"
	"net/http"

	"jikgusignalstore/internal/service"

	"github.com/labstack/echo/v4"
)

// httpError maps service-level failures onto wire statuses. Anything not in
// the taxonomy falls through to echo's default 500 handling.
func httpError(err error) error {
	switch {
	case errors.Is(err, service.ErrStoreUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, service.ErrStoreUnavailable.Error())
	case errors.Is(err, service.ErrInvalidUser),
		errors.Is(err, service.ErrInvalidAddress),
		errors.Is(err, service.ErrEmptyCart):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCartChanged):
		return echo.NewHTTPError(http.StatusConflict, service.ErrCartChanged.Error())
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, service.ErrNotFound.Error())
	}
	return err
}
