package v1

import (
	"net/http"

	"resume-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

func NewAnalyticsHandler(api *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &AnalyticsHandler{analyticsUC: analyticsUC}

	analytics := api.Group("/analytics")
	{
		analytics.GET("/overview", handler.Overview)
		analytics.GET("/timeline", handler.Timeline)
	}
}

// Overview godoc
// @Summary      Aggregate portal statistics
// @Description  Totals, activity over the last 7 days, top resume locations and top skills.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/overview [get]
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analyticsUC.Overview(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "analytics": overview})
}

// Timeline godoc
// @Summary      Resume creation counts per day over the last 30 days
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /analytics/timeline [get]
func (h *AnalyticsHandler) Timeline(c *gin.Context) {
	timeline, err := h.analyticsUC.Timeline(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if timeline == nil {
		timeline = []domain.TimelinePoint{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "timeline": timeline})
}
