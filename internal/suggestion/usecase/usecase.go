package usecase

import (
	"jobtrail-backend/internal/suggestion/domain"
	"jobtrail-backend/pkg/agent"
)

// SuggestionUsecase scores external postings against the user's declared
// skills and manages the resulting suggestion rows.
type SuggestionUsecase interface {
	ScoreAndStore(userID string, postings []domain.JobPosting) (*agent.RunSummary, error)
	GetSuggestions(userID string, includeDismissed bool) ([]*domain.JobSuggestion, error)
	SetApplied(userID, id string, applied bool) (*domain.JobSuggestion, error)
	SetDismissed(userID, id string, dismissed bool) (*domain.JobSuggestion, error)
}
