package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/core/ports/services"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/dto"
	"github.com/Muzzammil777/Garuda-Electricals-Hardwares/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the admin dashboard aggregate.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(ds portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

func registerDashboardRoutes(admin *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)
	admin.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Admin dashboard
// @Description Returns headline counters, recent invoices and customers, top billed products and the monthly revenue series.
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to assemble dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
