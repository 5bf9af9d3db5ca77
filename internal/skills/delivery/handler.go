package delivery

import (
	"net/http"

	"jobtrail-backend/internal/skills/usecase"

	"github.com/gin-gonic/gin"
)

// SkillsHandler handles skill-demand HTTP requests
type SkillsHandler struct {
	skillsUsecase usecase.SkillsUsecase
}

// NewSkillsHandler creates a new SkillsHandler
func NewSkillsHandler(skillsUsecase usecase.SkillsUsecase) *SkillsHandler {
	return &SkillsHandler{skillsUsecase: skillsUsecase}
}

// RunAggregation triggers one skill-demand pass for the authenticated user
// POST /api/agents/skills
func (h *SkillsHandler) RunAggregation(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user identifier required"})
		return
	}

	summary, err := h.skillsUsecase.RunAggregation(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSkillDemand lists the aggregated skill rows
// GET /api/skills
func (h *SkillsHandler) GetSkillDemand(c *gin.Context) {
	userID := c.GetString("userID")

	skills, err := h.skillsUsecase.GetSkillDemand(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"skills": skills,
		"total":  len(skills),
	})
}
