package v1

import (
	"net/http"

	"go-careercoach-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(api *gin.RouterGroup, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{
		dashboardUC: dashboardUC,
	}

	api.GET("/dashboard/stats", handler.GetStats)
}

// GetStats godoc
// @Summary      Dashboard Statistics
// @Description  Aggregated counters shown on the dashboard landing page.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.DashboardStats
// @Failure      500  {object}  response.Response
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardUC.GetStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
