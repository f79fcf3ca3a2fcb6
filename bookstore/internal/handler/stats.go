package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Dashboard
// @Summary   Admin counters
// @Tags      reporting
// @Produce   json
// @Security  BearerAuth
// @Success   200  {object}  model.Dashboard
// @Router    /dashboard [get]
func (h *Handler) Dashboard(c echo.Context) error {
	d, err := h.svc.Dashboard(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// Stats returns per event type aggregates collected by the consumer.
func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.svc.EventStats(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
