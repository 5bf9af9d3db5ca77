package usecase

import (
	"errors"
	"fmt"
	"log"

	authrepo "jobtrail-backend/internal/auth/repository"
	"jobtrail-backend/internal/suggestion/domain"
	"jobtrail-backend/internal/suggestion/repository"
	"jobtrail-backend/pkg/agent"
	"jobtrail-backend/pkg/capability"
)

// suggestionUsecase implements SuggestionUsecase
type suggestionUsecase struct {
	suggestionRepo repository.SuggestionRepository
	userRepo       authrepo.UserRepository
}

// NewSuggestionUsecase creates a new instance of suggestionUsecase
func NewSuggestionUsecase(suggestionRepo repository.SuggestionRepository, userRepo authrepo.UserRepository) SuggestionUsecase {
	return &suggestionUsecase{
		suggestionRepo: suggestionRepo,
		userRepo:       userRepo,
	}
}

// ScoreAndStore scores each posting against the user's declared skills and
// stores new suggestion rows. A posting whose source URL already exists is
// skipped; per-posting errors never abort the batch.
func (u *suggestionUsecase) ScoreAndStore(userID string, postings []domain.JobPosting) (*agent.RunSummary, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	skills := user.SkillList()

	summary := agent.NewRunSummary()
	for i, posting := range postings {
		summary.Processed++

		existing, err := u.suggestionRepo.FindBySourceURL(posting.SourceURL)
		if err != nil {
			log.Printf("[Match] posting %d (%s): %v", i, posting.SourceURL, err)
			summary.AddError(fmt.Sprintf("posting %d: %v", i, err))
			continue
		}
		if existing != nil {
			continue
		}

		score := MatchScore(posting.Title+" "+posting.Description, skills)
		suggestion := &domain.JobSuggestion{
			UserID:      userID,
			Title:       posting.Title,
			Company:     posting.Company,
			Location:    posting.Location,
			Description: posting.Description,
			SourceURL:   posting.SourceURL,
			MatchScore:  score,
		}
		if err := u.suggestionRepo.Create(suggestion, capability.MatchAgent); err != nil {
			log.Printf("[Match] posting %d (%s): %v", i, posting.SourceURL, err)
			summary.AddError(fmt.Sprintf("posting %d: %v", i, err))
			continue
		}
		summary.Created++
	}

	return summary, nil
}

func (u *suggestionUsecase) GetSuggestions(userID string, includeDismissed bool) ([]*domain.JobSuggestion, error) {
	return u.suggestionRepo.FindByUserID(userID, includeDismissed)
}

func (u *suggestionUsecase) SetApplied(userID, id string, applied bool) (*domain.JobSuggestion, error) {
	s, err := u.owned(userID, id)
	if err != nil {
		return nil, err
	}
	s.Applied = applied
	if err := u.suggestionRepo.Update(s, capability.User); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *suggestionUsecase) SetDismissed(userID, id string, dismissed bool) (*domain.JobSuggestion, error) {
	s, err := u.owned(userID, id)
	if err != nil {
		return nil, err
	}
	s.Dismissed = dismissed
	if err := u.suggestionRepo.Update(s, capability.User); err != nil {
		return nil, err
	}
	return s, nil
}

func (u *suggestionUsecase) owned(userID, id string) (*domain.JobSuggestion, error) {
	s, err := u.suggestionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New("suggestion not found")
	}
	if s.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return s, nil
}
