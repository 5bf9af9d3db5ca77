package delivery

import (
	"net/http"
	"strconv"

	"jobtrail-backend/internal/learning/usecase"

	"github.com/gin-gonic/gin"
)

// LearningHandler handles learning-task HTTP requests
type LearningHandler struct {
	learningUsecase usecase.LearningUsecase
}

// NewLearningHandler creates a new LearningHandler
func NewLearningHandler(learningUsecase usecase.LearningUsecase) *LearningHandler {
	return &LearningHandler{learningUsecase: learningUsecase}
}

// RunGeneration triggers one task-generation pass
// POST /api/agents/learning
func (h *LearningHandler) RunGeneration(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user identifier required"})
		return
	}

	summary, err := h.learningUsecase.RunGeneration(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetTasks returns all tasks for the authenticated user
// GET /api/tasks?completed=false&limit=50&offset=0
func (h *LearningHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var completed *bool
	if v := c.Query("completed"); v != "" {
		b := v == "true"
		completed = &b
	}

	tasks, total, err := h.learningUsecase.GetUserTasks(userID, completed, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"total": total,
	})
}

// CreateTask creates a new task manually
// POST /api/tasks
func (h *LearningHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req usecase.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.learningUsecase.CreateTask(userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTaskByID returns a specific task
// GET /api/tasks/:id
func (h *LearningHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.learningUsecase.GetTaskByID(userID, taskID)
	if err != nil {
		h.taskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// CompleteTask marks a task done
// PATCH /api/tasks/:id/complete
func (h *LearningHandler) CompleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.learningUsecase.CompleteTask(userID, taskID)
	if err != nil {
		h.taskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *LearningHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.learningUsecase.DeleteTask(userID, taskID); err != nil {
		h.taskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

func (h *LearningHandler) taskError(c *gin.Context, err error) {
	if err.Error() == "task not found" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}
	if err.Error() == "unauthorized" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
