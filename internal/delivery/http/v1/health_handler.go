package v1

import (
	"net/http"
	"time"

	"resume-portal-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

const serviceName = "Resume Builder & Job Portal API"

type HealthHandler struct {
	analyticsUC domain.AnalyticsUsecase
}

func NewHealthHandler(api *gin.RouterGroup, analyticsUC domain.AnalyticsUsecase) {
	handler := &HealthHandler{analyticsUC: analyticsUC}

	api.GET("/health", handler.Health)
}

// Health godoc
// @Summary      Service and database health
// @Description  Proves database connectivity by counting the core entities.
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	counts, err := h.analyticsUC.Counts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "ERROR",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "OK",
		"service":       serviceName,
		"database":      "Connected",
		"total_users":   counts.Users,
		"total_resumes": counts.Resumes,
		"total_jobs":    counts.Jobs,
		"timestamp":     time.Now().Format(time.RFC3339),
	})
}
