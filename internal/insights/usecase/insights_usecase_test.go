package usecase

import (
	"fmt"
	"testing"
	"time"

	trackerdomain "jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

type stubHistRepo struct {
	latestRejected map[string]*trackerdomain.StatusHistory // keyed by application ID
}

func (r *stubHistRepo) Append(entry *trackerdomain.StatusHistory, by capability.Capability) error {
	return nil
}
func (r *stubHistRepo) FindByApplicationID(applicationID string) ([]*trackerdomain.StatusHistory, error) {
	return nil, nil
}
func (r *stubHistRepo) FindLatestByNewStatus(applicationID string, status trackerdomain.Status) (*trackerdomain.StatusHistory, error) {
	return r.latestRejected[applicationID], nil
}

func newInsightsFixture(apps []*trackerdomain.Application, hist *stubHistRepo) *insightsUsecase {
	if hist == nil {
		hist = &stubHistRepo{}
	}
	uc := NewInsightsUsecase(&stubAppRepo{apps: apps}, hist).(*insightsUsecase)
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) }
	return uc
}

func app(id, company string, status trackerdomain.Status, createdAt time.Time) *trackerdomain.Application {
	return &trackerdomain.Application{
		ID:            id,
		UserID:        "user-1",
		Company:       company,
		CurrentStatus: status,
		CreatedAt:     createdAt,
	}
}

func TestComputeDashboard(t *testing.T) {
	recent := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	apps := []*trackerdomain.Application{
		app("a1", "TechCorp", trackerdomain.StatusApplied, recent),
		app("a2", "TechCorp", trackerdomain.StatusRejected, old),
		app("a3", "Acme", trackerdomain.StatusInterview, old),
		app("a4", "Globex", trackerdomain.StatusOffer, recent),
	}
	apps[2].DaysInStage = 12

	uc := newInsightsFixture(apps, &stubHistRepo{
		latestRejected: map[string]*trackerdomain.StatusHistory{
			"a2": {ApplicationID: "a2", NewStatus: trackerdomain.StatusRejected, Reason: "Position filled"},
		},
	})

	dash, err := uc.ComputeDashboard("user-1")
	require.NoError(t, err)

	assert.Equal(t, 4, dash.TotalApplications)
	assert.Equal(t, 1, dash.CountsByStatus[trackerdomain.StatusApplied])
	assert.Equal(t, 1, dash.CountsByStatus[trackerdomain.StatusInterview])
	assert.Equal(t, 0.25, dash.InterviewRate)
	assert.Equal(t, 0.25, dash.OfferRate)
	assert.Equal(t, 0.25, dash.RejectionRate)
	assert.Equal(t, 2, dash.ApplicationsThisWeek)
	assert.Equal(t, 12.0, dash.AvgDaysToInterview)
	assert.False(t, dash.ZeroInterviewAlert)

	require.NotEmpty(t, dash.TopCompanies)
	assert.Equal(t, "TechCorp", dash.TopCompanies[0].Company)
	assert.Equal(t, 2, dash.TopCompanies[0].Count)

	require.Len(t, dash.TopRejectionReasons, 1)
	assert.Equal(t, "Position filled", dash.TopRejectionReasons[0].Reason)
}

func TestComputeDashboardEmpty(t *testing.T) {
	uc := newInsightsFixture(nil, nil)

	dash, err := uc.ComputeDashboard("user-1")
	require.NoError(t, err)

	// No applications must not divide by zero or alert.
	assert.Equal(t, 0, dash.TotalApplications)
	assert.Equal(t, 0.0, dash.InterviewRate)
	assert.Equal(t, 0.0, dash.AvgDaysToInterview)
	assert.False(t, dash.ZeroInterviewAlert)
	assert.Empty(t, dash.TopCompanies)
	assert.Empty(t, dash.TopRejectionReasons)
}

func TestZeroInterviewAlert(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		interviews int
		want       bool
	}{
		{"six applications no interviews", 6, 0, true},
		{"five applications no interviews", 5, 0, false},
		{"six applications one interview", 6, 1, false},
		{"zero applications", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
			var apps []*trackerdomain.Application
			for i := 0; i < tt.total; i++ {
				status := trackerdomain.StatusApplied
				if i < tt.interviews {
					status = trackerdomain.StatusInterview
				}
				apps = append(apps, app(fmt.Sprintf("a%d", i), fmt.Sprintf("Company %d", i), status, created))
			}

			uc := newInsightsFixture(apps, nil)
			dash, err := uc.ComputeDashboard("user-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, dash.ZeroInterviewAlert)
		})
	}
}

func TestTopRejectionReasonsVerbatim(t *testing.T) {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	apps := []*trackerdomain.Application{
		app("a1", "C1", trackerdomain.StatusRejected, created),
		app("a2", "C2", trackerdomain.StatusRejected, created),
		app("a3", "C3", trackerdomain.StatusRejected, created),
	}

	// Near-duplicate phrasings stay distinct buckets.
	uc := newInsightsFixture(apps, &stubHistRepo{
		latestRejected: map[string]*trackerdomain.StatusHistory{
			"a1": {Reason: "Position filled"},
			"a2": {Reason: "Position filled"},
			"a3": {Reason: "position has been filled"},
		},
	})

	dash, err := uc.ComputeDashboard("user-1")
	require.NoError(t, err)

	require.Len(t, dash.TopRejectionReasons, 2)
	assert.Equal(t, "Position filled", dash.TopRejectionReasons[0].Reason)
	assert.Equal(t, 2, dash.TopRejectionReasons[0].Count)
	assert.Equal(t, "position has been filled", dash.TopRejectionReasons[1].Reason)
}

func TestTopCompaniesCapped(t *testing.T) {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	var apps []*trackerdomain.Application
	for i := 0; i < 8; i++ {
		apps = append(apps, app(fmt.Sprintf("a%d", i), fmt.Sprintf("Company %d", i), trackerdomain.StatusApplied, created))
	}

	uc := newInsightsFixture(apps, nil)
	dash, err := uc.ComputeDashboard("user-1")
	require.NoError(t, err)

	assert.Len(t, dash.TopCompanies, 5)
}
