package repository

import (
	"time"

	"jobtrail-backend/internal/inbox/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailLogRepository implements EmailLogRepository using GORM
type emailLogRepository struct {
	db *gorm.DB
}

// NewEmailLogRepository creates a new GORM-based EmailLogRepository
func NewEmailLogRepository(db *gorm.DB) EmailLogRepository {
	return &emailLogRepository{db: db}
}

func (r *emailLogRepository) Create(entry *domain.EmailLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.CreatedAt = time.Now()
	return r.db.Create(entry).Error
}

func (r *emailLogRepository) FindByUserID(userID string, limit, offset int) ([]*domain.EmailLog, int64, error) {
	var entries []*domain.EmailLog
	var total int64

	query := r.db.Model(&domain.EmailLog{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("received_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	return entries, total, err
}
