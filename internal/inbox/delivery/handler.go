package delivery

import (
	"net/http"
	"strconv"

	"jobtrail-backend/internal/inbox/domain"
	"jobtrail-backend/internal/inbox/usecase"

	"github.com/gin-gonic/gin"
)

// InboxHandler handles email-batch HTTP requests
type InboxHandler struct {
	inboxUsecase usecase.InboxUsecase
}

// NewInboxHandler creates a new InboxHandler
func NewInboxHandler(inboxUsecase usecase.InboxUsecase) *InboxHandler {
	return &InboxHandler{inboxUsecase: inboxUsecase}
}

// ProcessBatchRequest is the caller-supplied email batch
type ProcessBatchRequest struct {
	Emails []domain.InboundEmail `json:"emails" binding:"required"`
}

// ProcessBatch runs the email routine over the supplied batch
// POST /api/agents/inbox
func (h *InboxHandler) ProcessBatch(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user identifier required"})
		return
	}

	var req ProcessBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.inboxUsecase.ProcessBatch(userID, req.Emails)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetEmailLog returns the processed-email audit log
// GET /api/inbox/log?limit=50&offset=0
func (h *InboxHandler) GetEmailLog(c *gin.Context) {
	userID := c.GetString("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, total, err := h.inboxUsecase.GetEmailLog(userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emails": entries,
		"total":  total,
	})
}
