package repository

import "jobtrail-backend/internal/inbox/domain"

// EmailLogRepository records every inbound email the batch processor saw.
type EmailLogRepository interface {
	Create(entry *domain.EmailLog) error
	FindByUserID(userID string, limit, offset int) ([]*domain.EmailLog, int64, error)
}
