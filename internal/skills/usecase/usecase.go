package usecase

import (
	"jobtrail-backend/internal/skills/domain"
	"jobtrail-backend/pkg/agent"
)

// SkillsUsecase aggregates skill demand across the user's applications.
type SkillsUsecase interface {
	RunAggregation(userID string) (*agent.RunSummary, error)
	GetSkillDemand(userID string) ([]*domain.SkillDemand, error)
}
