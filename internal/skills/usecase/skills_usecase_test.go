package usecase

import (
	"testing"

	"jobtrail-backend/internal/skills/domain"
	trackerdomain "jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSkillRepo struct {
	rows map[string]*domain.SkillDemand // keyed by skill name
}

func newMemSkillRepo() *memSkillRepo {
	return &memSkillRepo{rows: make(map[string]*domain.SkillDemand)}
}

func (r *memSkillRepo) Upsert(s *domain.SkillDemand, by capability.Capability) error {
	if err := capability.AuthorizeWrite("skill_demand", by); err != nil {
		return err
	}
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	stored := *s
	r.rows[s.SkillName] = &stored
	return nil
}

func (r *memSkillRepo) FindByUserAndSkill(userID, skill string) (*domain.SkillDemand, error) {
	s, ok := r.rows[skill]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *memSkillRepo) FindByUserID(userID string) ([]*domain.SkillDemand, error) {
	var out []*domain.SkillDemand
	for _, s := range r.rows {
		if s.UserID == userID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memSkillRepo) FindRisingByUserID(userID string) ([]*domain.SkillDemand, error) {
	var out []*domain.SkillDemand
	for _, s := range r.rows {
		if s.UserID == userID && s.RisingTrend {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

// stubAppRepo serves a fixed application list; the aggregator only reads.
type stubAppRepo struct {
	apps []*trackerdomain.Application
}

func (r *stubAppRepo) Create(app *trackerdomain.Application, by capability.Capability) error {
	return nil
}
func (r *stubAppRepo) Update(app *trackerdomain.Application, by capability.Capability) error {
	return nil
}
func (r *stubAppRepo) UpdateDaysInStage(id string, days int, by capability.Capability) error {
	return nil
}
func (r *stubAppRepo) FindByID(id string) (*trackerdomain.Application, error) { return nil, nil }
func (r *stubAppRepo) FindByUserAndCompany(userID, company string) (*trackerdomain.Application, error) {
	return nil, nil
}
func (r *stubAppRepo) FindByUserID(userID string) ([]*trackerdomain.Application, error) {
	return r.apps, nil
}
func (r *stubAppRepo) FindOpenByUserID(userID string) ([]*trackerdomain.Application, error) {
	return r.apps, nil
}

func testCatalog() *domain.SkillCatalog {
	return &domain.SkillCatalog{
		Themes: []domain.Theme{
			{Name: "Go", Keywords: []string{"Go", "gRPC"}},
			{Name: "Data", Keywords: []string{"Kafka"}},
		},
		ExtraPatterns: []string{`\b(rust)\b`},
	}
}

func TestRunAggregationCounts(t *testing.T) {
	skillRepo := newMemSkillRepo()
	appRepo := &stubAppRepo{apps: []*trackerdomain.Application{
		{
			UserID:        "user-1",
			Role:          "Go Developer",
			Description:   "Go services speaking gRPC, Kafka consumers in Go.",
			CurrentStatus: trackerdomain.StatusApplied,
		},
		{
			UserID:        "user-1",
			Role:          "Backend Engineer",
			Description:   "Kafka pipelines, some Rust.",
			CurrentStatus: trackerdomain.StatusApplied,
		},
	}}
	uc := NewSkillsUsecase(skillRepo, appRepo, testCatalog())

	summary, err := uc.RunAggregation("user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 4, summary.Created)
	assert.Empty(t, summary.Errors)

	goRow, _ := skillRepo.FindByUserAndSkill("user-1", "Go")
	require.NotNil(t, goRow)
	assert.Equal(t, 3, goRow.Frequency) // role + two description hits
	assert.Equal(t, "Go", goRow.Category)

	kafkaRow, _ := skillRepo.FindByUserAndSkill("user-1", "Kafka")
	require.NotNil(t, kafkaRow)
	assert.Equal(t, 2, kafkaRow.Frequency)
	assert.Equal(t, "Data", kafkaRow.Category)

	rustRow, _ := skillRepo.FindByUserAndSkill("user-1", "rust")
	require.NotNil(t, rustRow)
	assert.Equal(t, 1, rustRow.Frequency)
}

func TestRunAggregationWordBoundaries(t *testing.T) {
	skillRepo := newMemSkillRepo()
	appRepo := &stubAppRepo{apps: []*trackerdomain.Application{
		{
			UserID:        "user-1",
			Role:          "Developer",
			Description:   "Going to Chicago; mongodb and Google experience.",
			CurrentStatus: trackerdomain.StatusApplied,
		},
	}}
	uc := NewSkillsUsecase(skillRepo, appRepo, testCatalog())

	_, err := uc.RunAggregation("user-1")
	require.NoError(t, err)

	// "Going" and "Google" must not count as Go.
	row, _ := skillRepo.FindByUserAndSkill("user-1", "Go")
	assert.Nil(t, row)
}

func TestRunAggregationOverwritesCounts(t *testing.T) {
	skillRepo := newMemSkillRepo()
	appRepo := &stubAppRepo{apps: []*trackerdomain.Application{
		{
			UserID:        "user-1",
			Role:          "Go Developer",
			Description:   "Go and Kafka.",
			CurrentStatus: trackerdomain.StatusApplied,
		},
	}}
	uc := NewSkillsUsecase(skillRepo, appRepo, testCatalog())

	_, err := uc.RunAggregation("user-1")
	require.NoError(t, err)

	row, _ := skillRepo.FindByUserAndSkill("user-1", "Go")
	require.NotNil(t, row)
	assert.Equal(t, 2, row.Frequency)

	// The description changed; the next run replaces the count instead of
	// adding to it.
	appRepo.apps[0].Description = "Mostly Kafka now."
	summary, err := uc.RunAggregation("user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)

	row, _ = skillRepo.FindByUserAndSkill("user-1", "Go")
	require.NotNil(t, row)
	assert.Equal(t, 1, row.Frequency)
}

func TestRunAggregationSplitsByOutcome(t *testing.T) {
	skillRepo := newMemSkillRepo()
	appRepo := &stubAppRepo{apps: []*trackerdomain.Application{
		{UserID: "user-1", Role: "Go Developer", CurrentStatus: trackerdomain.StatusRejected},
		{UserID: "user-1", Role: "Go Engineer", CurrentStatus: trackerdomain.StatusOffer},
		{UserID: "user-1", Role: "Go Lead", CurrentStatus: trackerdomain.StatusApplied},
	}}
	uc := NewSkillsUsecase(skillRepo, appRepo, testCatalog())

	_, err := uc.RunAggregation("user-1")
	require.NoError(t, err)

	row, _ := skillRepo.FindByUserAndSkill("user-1", "Go")
	require.NotNil(t, row)
	assert.Equal(t, 3, row.Frequency)
	assert.Equal(t, 1, row.RejectionCount)
	assert.Equal(t, 1, row.OfferCount)
}

func TestRunAggregationTrendIsSticky(t *testing.T) {
	skillRepo := newMemSkillRepo()
	appRepo := &stubAppRepo{apps: []*trackerdomain.Application{
		{
			UserID:        "user-1",
			Role:          "Go Developer",
			Description:   "Go, Go, and more Go.",
			CurrentStatus: trackerdomain.StatusOffer,
		},
	}}
	uc := NewSkillsUsecase(skillRepo, appRepo, testCatalog())

	_, err := uc.RunAggregation("user-1")
	require.NoError(t, err)

	row, _ := skillRepo.FindByUserAndSkill("user-1", "Go")
	require.NotNil(t, row)
	assert.True(t, row.RisingTrend) // 4 offer-weighted hits beat the floor

	// Status flips to rejected: counts follow but the flag never clears.
	appRepo.apps[0].CurrentStatus = trackerdomain.StatusRejected
	_, err = uc.RunAggregation("user-1")
	require.NoError(t, err)

	row, _ = skillRepo.FindByUserAndSkill("user-1", "Go")
	require.NotNil(t, row)
	assert.Equal(t, 4, row.RejectionCount)
	assert.Equal(t, 0, row.OfferCount)
	assert.True(t, row.RisingTrend)

	rising, _ := skillRepo.FindRisingByUserID("user-1")
	assert.Len(t, rising, 1)
}

func TestRunAggregationBelowTrendFloor(t *testing.T) {
	skillRepo := newMemSkillRepo()
	appRepo := &stubAppRepo{apps: []*trackerdomain.Application{
		{UserID: "user-1", Role: "Go Developer", CurrentStatus: trackerdomain.StatusOffer},
	}}
	uc := NewSkillsUsecase(skillRepo, appRepo, testCatalog())

	_, err := uc.RunAggregation("user-1")
	require.NoError(t, err)

	row, _ := skillRepo.FindByUserAndSkill("user-1", "Go")
	require.NotNil(t, row)
	assert.False(t, row.RisingTrend) // frequency 1 is below the floor
}
