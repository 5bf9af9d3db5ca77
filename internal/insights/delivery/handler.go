package delivery

import (
	"net/http"

	"jobtrail-backend/internal/insights/usecase"

	"github.com/gin-gonic/gin"
)

// InsightsHandler handles dashboard HTTP requests
type InsightsHandler struct {
	insightsUsecase usecase.InsightsUsecase
}

// NewInsightsHandler creates a new InsightsHandler
func NewInsightsHandler(insightsUsecase usecase.InsightsUsecase) *InsightsHandler {
	return &InsightsHandler{insightsUsecase: insightsUsecase}
}

// GetDashboard returns the computed metrics
// GET /api/insights/dashboard
func (h *InsightsHandler) GetDashboard(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user identifier required"})
		return
	}

	dash, err := h.insightsUsecase.ComputeDashboard(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dash)
}
