package delivery

import (
	"net/http"

	"jobtrail-backend/internal/suggestion/domain"
	"jobtrail-backend/internal/suggestion/usecase"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler handles job-suggestion HTTP requests
type SuggestionHandler struct {
	suggestionUsecase usecase.SuggestionUsecase
}

// NewSuggestionHandler creates a new SuggestionHandler
func NewSuggestionHandler(suggestionUsecase usecase.SuggestionUsecase) *SuggestionHandler {
	return &SuggestionHandler{suggestionUsecase: suggestionUsecase}
}

// ScoreRequest is the batch of postings handed to the match routine
type ScoreRequest struct {
	Postings []domain.JobPosting `json:"postings" binding:"required"`
}

// FlagRequest flips one of the user-facing filter booleans
type FlagRequest struct {
	Value bool `json:"value"`
}

// RunMatch scores a batch of postings for the authenticated user
// POST /api/agents/match
func (h *SuggestionHandler) RunMatch(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user identifier required"})
		return
	}

	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.suggestionUsecase.ScoreAndStore(userID, req.Postings)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSuggestions lists the user's suggestions
// GET /api/suggestions?include_dismissed=false
func (h *SuggestionHandler) GetSuggestions(c *gin.Context) {
	userID := c.GetString("userID")
	includeDismissed := c.Query("include_dismissed") == "true"

	suggestions, err := h.suggestionUsecase.GetSuggestions(userID, includeDismissed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"total":       len(suggestions),
	})
}

// SetApplied flips the applied filter flag
// PATCH /api/suggestions/:id/applied
func (h *SuggestionHandler) SetApplied(c *gin.Context) {
	h.flag(c, h.suggestionUsecase.SetApplied)
}

// SetDismissed flips the dismissed filter flag
// PATCH /api/suggestions/:id/dismissed
func (h *SuggestionHandler) SetDismissed(c *gin.Context) {
	h.flag(c, h.suggestionUsecase.SetDismissed)
}

func (h *SuggestionHandler) flag(c *gin.Context, fn func(userID, id string, value bool) (*domain.JobSuggestion, error)) {
	userID := c.GetString("userID")
	id := c.Param("id")

	var req FlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := fn(userID, id, req.Value)
	if err != nil {
		if err.Error() == "suggestion not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
			return
		}
		if err.Error() == "unauthorized" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, s)
}
