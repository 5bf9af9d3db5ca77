package repository

import (
	"errors"
	"time"

	"jobtrail-backend/internal/learning/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormLearningTaskRepository implements LearningTaskRepository using GORM
type gormLearningTaskRepository struct {
	db *gorm.DB
}

// NewLearningTaskRepository creates a new GORM-based LearningTaskRepository
func NewLearningTaskRepository(db *gorm.DB) LearningTaskRepository {
	return &gormLearningTaskRepository{db: db}
}

func (r *gormLearningTaskRepository) Create(task *domain.LearningTask, by capability.Capability) error {
	if err := capability.AuthorizeWrite("learning_tasks", by); err != nil {
		return err
	}
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormLearningTaskRepository) Update(task *domain.LearningTask, by capability.Capability) error {
	if err := capability.AuthorizeWrite("learning_tasks", by); err != nil {
		return err
	}
	task.UpdatedAt = time.Now()
	return r.db.Save(task).Error
}

func (r *gormLearningTaskRepository) Delete(id string, by capability.Capability) error {
	if err := capability.AuthorizeWrite("learning_tasks", by); err != nil {
		return err
	}
	return r.db.Delete(&domain.LearningTask{}, "id = ?", id).Error
}

func (r *gormLearningTaskRepository) FindByID(id string) (*domain.LearningTask, error) {
	var task domain.LearningTask
	err := r.db.Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormLearningTaskRepository) FindByUserID(userID string, completed *bool, limit, offset int) ([]*domain.LearningTask, int64, error) {
	var tasks []*domain.LearningTask
	var total int64

	query := r.db.Model(&domain.LearningTask{}).Where("user_id = ?", userID)
	if completed != nil {
		query = query.Where("completed = ?", *completed)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	return tasks, total, err
}

func (r *gormLearningTaskRepository) FindOpenByApplicationID(applicationID string) ([]*domain.LearningTask, error) {
	var tasks []*domain.LearningTask
	err := r.db.Where("application_id = ? AND completed = ?", applicationID, false).Find(&tasks).Error
	return tasks, err
}

func (r *gormLearningTaskRepository) FindOpenBySkillName(userID, skillName string) ([]*domain.LearningTask, error) {
	var tasks []*domain.LearningTask
	err := r.db.Where("user_id = ? AND skill_name = ? AND completed = ?", userID, skillName, false).Find(&tasks).Error
	return tasks, err
}

func (r *gormLearningTaskRepository) FindOpenByUserID(userID string) ([]*domain.LearningTask, error) {
	var tasks []*domain.LearningTask
	err := r.db.Where("user_id = ? AND completed = ?", userID, false).
		Order("priority ASC, created_at ASC").Find(&tasks).Error
	return tasks, err
}
