package usecase

import (
	"jobtrail-backend/internal/learning/domain"
	"jobtrail-backend/pkg/agent"
)

// LearningUsecase generates and manages learning tasks.
type LearningUsecase interface {
	// RunGeneration creates interview-prep tasks for applications in the
	// INTERVIEW stage and study tasks for trending skills.
	RunGeneration(userID string) (*agent.RunSummary, error)

	CreateTask(userID string, req CreateTaskRequest) (*domain.LearningTask, error)
	GetUserTasks(userID string, completed *bool, limit, offset int) ([]*domain.LearningTask, int64, error)
	GetTaskByID(userID, taskID string) (*domain.LearningTask, error)
	CompleteTask(userID, taskID string) (*domain.LearningTask, error)
	DeleteTask(userID, taskID string) error
}

// CreateTaskRequest is the payload for a manually created task.
type CreateTaskRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	EstimatedHours int      `json:"estimated_hours"`
	Resources      []string `json:"resources"`
}
