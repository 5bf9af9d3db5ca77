package repository

import (
	"errors"
	"time"

	"jobtrail-backend/internal/suggestion/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// suggestionRepository implements SuggestionRepository using GORM
type suggestionRepository struct {
	db *gorm.DB
}

// NewSuggestionRepository creates a new GORM-based SuggestionRepository
func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) Create(s *domain.JobSuggestion, by capability.Capability) error {
	if err := capability.AuthorizeWrite("job_suggestions", by); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()
	return r.db.Create(s).Error
}

func (r *suggestionRepository) Update(s *domain.JobSuggestion, by capability.Capability) error {
	if err := capability.AuthorizeWrite("job_suggestions", by); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return r.db.Save(s).Error
}

func (r *suggestionRepository) FindByID(id string) (*domain.JobSuggestion, error) {
	var s domain.JobSuggestion
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *suggestionRepository) FindBySourceURL(url string) (*domain.JobSuggestion, error) {
	var s domain.JobSuggestion
	err := r.db.Where("source_url = ?", url).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *suggestionRepository) FindByUserID(userID string, includeDismissed bool) ([]*domain.JobSuggestion, error) {
	var out []*domain.JobSuggestion
	query := r.db.Where("user_id = ?", userID)
	if !includeDismissed {
		query = query.Where("dismissed = ?", false)
	}
	err := query.Order("match_score DESC").Find(&out).Error
	return out, err
}
