package repository

import (
	"errors"
	"time"

	"jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// statusHistoryRepository implements StatusHistoryRepository using GORM
type statusHistoryRepository struct {
	db *gorm.DB
}

// NewStatusHistoryRepository creates a new GORM-based StatusHistoryRepository
func NewStatusHistoryRepository(db *gorm.DB) StatusHistoryRepository {
	return &statusHistoryRepository{db: db}
}

func (r *statusHistoryRepository) Append(entry *domain.StatusHistory, by capability.Capability) error {
	if err := capability.AuthorizeWrite("status_history", by); err != nil {
		return err
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.DetectedBy = string(by)
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *statusHistoryRepository) FindByApplicationID(applicationID string) ([]*domain.StatusHistory, error) {
	var entries []*domain.StatusHistory
	err := r.db.Where("application_id = ?", applicationID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}

func (r *statusHistoryRepository) FindLatestByNewStatus(applicationID string, status domain.Status) (*domain.StatusHistory, error) {
	var entry domain.StatusHistory
	err := r.db.Where("application_id = ? AND new_status = ?", applicationID, status).
		Order("created_at DESC").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
