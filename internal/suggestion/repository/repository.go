package repository

import (
	"jobtrail-backend/internal/suggestion/domain"
	"jobtrail-backend/pkg/capability"
)

// SuggestionRepository defines the interface for job-suggestion data access
type SuggestionRepository interface {
	Create(s *domain.JobSuggestion, by capability.Capability) error
	Update(s *domain.JobSuggestion, by capability.Capability) error
	FindByID(id string) (*domain.JobSuggestion, error)
	FindBySourceURL(url string) (*domain.JobSuggestion, error)
	FindByUserID(userID string, includeDismissed bool) ([]*domain.JobSuggestion, error)
}
