package repository

import (
	"jobtrail-backend/internal/skills/domain"
	"jobtrail-backend/pkg/capability"
)

// SkillDemandRepository defines the interface for skill-demand data access
type SkillDemandRepository interface {
	Upsert(s *domain.SkillDemand, by capability.Capability) error
	FindByUserAndSkill(userID, skill string) (*domain.SkillDemand, error)
	FindByUserID(userID string) ([]*domain.SkillDemand, error)

	// FindRisingByUserID returns skills currently flagged as trending.
	FindRisingByUserID(userID string) ([]*domain.SkillDemand, error)
}
