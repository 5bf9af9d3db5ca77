package delivery

import (
	"net/http"

	"jobtrail-backend/internal/tracker/usecase"

	"github.com/gin-gonic/gin"
)

// TrackerHandler handles application-related HTTP requests
type TrackerHandler struct {
	trackerUsecase usecase.TrackerUsecase
	agingUsecase   usecase.AgingUsecase
}

// NewTrackerHandler creates a new TrackerHandler
func NewTrackerHandler(trackerUsecase usecase.TrackerUsecase, agingUsecase usecase.AgingUsecase) *TrackerHandler {
	return &TrackerHandler{
		trackerUsecase: trackerUsecase,
		agingUsecase:   agingUsecase,
	}
}

// GetApplications returns all applications for the authenticated user
// GET /api/applications
func (h *TrackerHandler) GetApplications(c *gin.Context) {
	userID := c.GetString("userID")

	apps, err := h.trackerUsecase.GetApplications(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// CreateApplication creates an application manually
// POST /api/applications
func (h *TrackerHandler) CreateApplication(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.trackerUsecase.CreateApplication(userID, req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, app)
}

// GetApplicationByID returns a specific application
// GET /api/applications/:id
func (h *TrackerHandler) GetApplicationByID(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	app, err := h.trackerUsecase.GetApplicationByID(userID, id)
	if err != nil {
		if err.Error() == "application not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, app)
}

// GetHistory returns the audit trail for one application
// GET /api/applications/:id/history
func (h *TrackerHandler) GetHistory(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	entries, err := h.trackerUsecase.GetHistory(userID, id)
	if err != nil {
		if err.Error() == "application not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// RunAgingPass triggers one aging pass for the authenticated user
// POST /api/agents/aging
func (h *TrackerHandler) RunAgingPass(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user identifier required"})
		return
	}

	summary, err := h.agingUsecase.RunAgingPass(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}
