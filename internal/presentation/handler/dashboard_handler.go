package handler

import (
	"github.com/labstack/echo/v4"

	"saukstas/internal/application/usecase/abstraction"
	"saukstas/internal/presentation"
)

type DashboardHandler struct {
	dashboard abstraction.Dashboard
}

func NewDashboardHandler(dashboard abstraction.Dashboard) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
	}
}

// HandleStats handles GET /admin/dashboard/stats requests.
func (h *DashboardHandler) HandleStats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context())
	if err != nil {
		return presentation.Fail(c, err)
	}

	return presentation.OK(c, stats)
}
