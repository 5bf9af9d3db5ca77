package repository

import (
	"errors"
	"time"

	"jobtrail-backend/internal/skills/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// skillDemandRepository implements SkillDemandRepository using GORM
type skillDemandRepository struct {
	db *gorm.DB
}

// NewSkillDemandRepository creates a new GORM-based SkillDemandRepository
func NewSkillDemandRepository(db *gorm.DB) SkillDemandRepository {
	return &skillDemandRepository{db: db}
}

func (r *skillDemandRepository) Upsert(s *domain.SkillDemand, by capability.Capability) error {
	if err := capability.AuthorizeWrite("skill_demand", by); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
		s.CreatedAt = time.Now()
	}
	s.UpdatedAt = time.Now()
	return r.db.Save(s).Error
}

func (r *skillDemandRepository) FindByUserAndSkill(userID, skill string) (*domain.SkillDemand, error) {
	var s domain.SkillDemand
	err := r.db.Where("user_id = ? AND skill_name = ?", userID, skill).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillDemandRepository) FindByUserID(userID string) ([]*domain.SkillDemand, error) {
	var out []*domain.SkillDemand
	err := r.db.Where("user_id = ?", userID).Order("frequency DESC").Find(&out).Error
	return out, err
}

func (r *skillDemandRepository) FindRisingByUserID(userID string) ([]*domain.SkillDemand, error) {
	var out []*domain.SkillDemand
	err := r.db.Where("user_id = ? AND rising_trend = ?", userID, true).
		Order("frequency DESC").Find(&out).Error
	return out, err
}
