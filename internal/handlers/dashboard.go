package handlers

import (
	"net/http"

	"github.com/lexablackstar/HealthCheckApp/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary      Role-scoped view of teams, departments, users and sessions
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.DashboardView
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	caller := currentCaller(c)

	view, err := h.dashboardService.Compose(caller.UserID, caller.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, view)
}
