package usecase

import (
	"jobtrail-backend/internal/inbox/domain"
	"jobtrail-backend/pkg/agent"
)

// InboxUsecase processes caller-supplied email batches into application
// lifecycle events.
type InboxUsecase interface {
	ProcessBatch(userID string, emails []domain.InboundEmail) (*agent.RunSummary, error)
	GetEmailLog(userID string, limit, offset int) ([]*domain.EmailLog, int64, error)
}
