package repository

import (
	"jobtrail-backend/internal/learning/domain"
	"jobtrail-backend/pkg/capability"
)

// LearningTaskRepository defines the interface for learning-task data access
type LearningTaskRepository interface {
	Create(task *domain.LearningTask, by capability.Capability) error
	Update(task *domain.LearningTask, by capability.Capability) error
	Delete(id string, by capability.Capability) error
	FindByID(id string) (*domain.LearningTask, error)
	FindByUserID(userID string, completed *bool, limit, offset int) ([]*domain.LearningTask, int64, error)

	// FindOpenByApplicationID returns incomplete tasks linked to the
	// application; used to avoid generating duplicate prep tasks.
	FindOpenByApplicationID(applicationID string) ([]*domain.LearningTask, error)

	// FindOpenBySkillName returns incomplete tasks for the skill.
	FindOpenBySkillName(userID, skillName string) ([]*domain.LearningTask, error)

	// FindOpenByUserID returns every incomplete task, for the digest.
	FindOpenByUserID(userID string) ([]*domain.LearningTask, error)
}
