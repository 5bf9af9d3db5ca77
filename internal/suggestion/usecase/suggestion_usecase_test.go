package usecase

import (
	"errors"
	"testing"

	authdomain "jobtrail-backend/internal/auth/domain"
	"jobtrail-backend/internal/suggestion/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSuggestionRepo struct {
	byURL map[string]*domain.JobSuggestion
}

func newMemSuggestionRepo() *memSuggestionRepo {
	return &memSuggestionRepo{byURL: make(map[string]*domain.JobSuggestion)}
}

func (r *memSuggestionRepo) Create(s *domain.JobSuggestion, by capability.Capability) error {
	if err := capability.AuthorizeWrite("job_suggestions", by); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	stored := *s
	r.byURL[s.SourceURL] = &stored
	return nil
}

func (r *memSuggestionRepo) Update(s *domain.JobSuggestion, by capability.Capability) error {
	if err := capability.AuthorizeWrite("job_suggestions", by); err != nil {
		return err
	}
	stored := *s
	r.byURL[s.SourceURL] = &stored
	return nil
}

func (r *memSuggestionRepo) FindByID(id string) (*domain.JobSuggestion, error) {
	for _, s := range r.byURL {
		if s.ID == id {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memSuggestionRepo) FindBySourceURL(url string) (*domain.JobSuggestion, error) {
	s, ok := r.byURL[url]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *memSuggestionRepo) FindByUserID(userID string, includeDismissed bool) ([]*domain.JobSuggestion, error) {
	var out []*domain.JobSuggestion
	for _, s := range r.byURL {
		if s.UserID != userID || (s.Dismissed && !includeDismissed) {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	return out, nil
}

// stubUserRepo serves a single user; the write methods are never reached
// from these tests.
type stubUserRepo struct {
	user *authdomain.User
}

func (r *stubUserRepo) Create(user *authdomain.User) error    { return errors.New("not implemented") }
func (r *stubUserRepo) Update(user *authdomain.User) error    { return errors.New("not implemented") }
func (r *stubUserRepo) FindByEmail(email string) (*authdomain.User, error) { return nil, nil }
func (r *stubUserRepo) FindAll() ([]*authdomain.User, error) {
	if r.user == nil {
		return nil, nil
	}
	return []*authdomain.User{r.user}, nil
}
func (r *stubUserRepo) FindByID(id string) (*authdomain.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, nil
}
func (r *stubUserRepo) SaveRefreshToken(token *authdomain.RefreshToken) error { return nil }
func (r *stubUserRepo) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	return nil, nil
}
func (r *stubUserRepo) DeleteRefreshToken(token string) error { return nil }

func TestScoreAndStore(t *testing.T) {
	suggestionRepo := newMemSuggestionRepo()
	userRepo := &stubUserRepo{user: &authdomain.User{
		ID:     "user-1",
		Email:  "dev@example.com",
		Skills: "Go, Docker, React, GraphQL",
	}}
	uc := NewSuggestionUsecase(suggestionRepo, userRepo)

	postings := []domain.JobPosting{
		{
			Title:       "Senior Go Developer",
			Company:     "TechCorp",
			Description: "Experience with Docker and Kubernetes required.",
			SourceURL:   "https://jobs.example.com/1",
		},
		{
			Title:       "Forklift Operator",
			Company:     "Warehouse Inc",
			Description: "No prior experience needed.",
			SourceURL:   "https://jobs.example.com/2",
		},
	}

	summary, err := uc.ScoreAndStore("user-1", postings)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 2, summary.Created)

	first, _ := suggestionRepo.FindBySourceURL("https://jobs.example.com/1")
	require.NotNil(t, first)
	assert.Equal(t, 50.0, first.MatchScore)
	assert.Equal(t, "TechCorp", first.Company)

	second, _ := suggestionRepo.FindBySourceURL("https://jobs.example.com/2")
	require.NotNil(t, second)
	assert.Equal(t, 0.0, second.MatchScore)
}

func TestScoreAndStoreSkipsKnownURLs(t *testing.T) {
	suggestionRepo := newMemSuggestionRepo()
	userRepo := &stubUserRepo{user: &authdomain.User{ID: "user-1", Skills: "Go"}}
	uc := NewSuggestionUsecase(suggestionRepo, userRepo)

	posting := domain.JobPosting{
		Title:     "Go Developer",
		SourceURL: "https://jobs.example.com/1",
	}

	first, err := uc.ScoreAndStore("user-1", []domain.JobPosting{posting})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Created)

	second, err := uc.ScoreAndStore("user-1", []domain.JobPosting{posting})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Processed)
	assert.Equal(t, 0, second.Created)
	assert.Len(t, suggestionRepo.byURL, 1)
}

func TestScoreAndStoreUnknownUser(t *testing.T) {
	uc := NewSuggestionUsecase(newMemSuggestionRepo(), &stubUserRepo{})

	_, err := uc.ScoreAndStore("missing", nil)
	assert.Error(t, err)
}

func TestSetDismissedChecksOwnership(t *testing.T) {
	suggestionRepo := newMemSuggestionRepo()
	userRepo := &stubUserRepo{user: &authdomain.User{ID: "user-1", Skills: "Go"}}
	uc := NewSuggestionUsecase(suggestionRepo, userRepo)

	s := &domain.JobSuggestion{UserID: "user-1", SourceURL: "https://jobs.example.com/1"}
	require.NoError(t, suggestionRepo.Create(s, capability.MatchAgent))

	updated, err := uc.SetDismissed("user-1", s.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Dismissed)

	_, err = uc.SetDismissed("someone-else", s.ID, true)
	assert.Error(t, err)
}
