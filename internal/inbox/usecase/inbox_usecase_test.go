package usecase

import (
	"errors"
	"testing"

	"jobtrail-backend/internal/inbox/classify"
	"jobtrail-backend/internal/inbox/domain"
	trackerusecase "jobtrail-backend/internal/tracker/usecase"
	"jobtrail-backend/pkg/capability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLifecycle returns a canned outcome per company and records what it saw.
type fakeLifecycle struct {
	outcomes map[string]*trackerusecase.EventOutcome
	errs     map[string]error
	calls    []string
}

func (f *fakeLifecycle) ApplyEvent(userID, company, role string, event domain.EventType, email domain.InboundEmail, by capability.Capability) (*trackerusecase.EventOutcome, error) {
	f.calls = append(f.calls, company)
	if err := f.errs[company]; err != nil {
		return nil, err
	}
	if out := f.outcomes[company]; out != nil {
		return out, nil
	}
	return &trackerusecase.EventOutcome{}, nil
}

type memLogRepo struct {
	entries []*domain.EmailLog
}

func (r *memLogRepo) Create(entry *domain.EmailLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memLogRepo) FindByUserID(userID string, limit, offset int) ([]*domain.EmailLog, int64, error) {
	return r.entries, int64(len(r.entries)), nil
}

func newInboxFixture(lc *fakeLifecycle) (InboxUsecase, *memLogRepo) {
	logRepo := &memLogRepo{}
	uc := NewInboxUsecase(
		classify.NewClassifier(classify.DefaultCatalog()),
		classify.NewExtractor(),
		lc,
		logRepo,
	)
	return uc, logRepo
}

func TestProcessBatch(t *testing.T) {
	lc := &fakeLifecycle{
		outcomes: map[string]*trackerusecase.EventOutcome{
			"TechCorp": {Created: true},
			"Acme":     {Updated: true},
		},
	}
	uc, logRepo := newInboxFixture(lc)

	emails := []domain.InboundEmail{
		{Subject: "Interview Scheduled for Senior Developer at TechCorp"},
		{Subject: "Update from Acme, next steps", Body: "Unfortunately we will not be progressing"},
		{Subject: "Your weekly newsletter"},
	}

	summary, err := uc.ProcessBatch("user-1", emails)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Escalated)
	assert.Empty(t, summary.Errors)

	// The newsletter has no extractable company, so the lifecycle updater
	// never saw it.
	assert.Equal(t, []string{"TechCorp", "Acme"}, lc.calls)

	require.Len(t, logRepo.entries, 3)
	assert.Equal(t, domain.OutcomeCreated, logRepo.entries[0].Outcome)
	assert.Equal(t, domain.EventInterviewScheduled, logRepo.entries[0].DetectedEvent)
	assert.Equal(t, domain.OutcomeUpdated, logRepo.entries[1].Outcome)
	assert.Equal(t, domain.OutcomeEscalated, logRepo.entries[2].Outcome)
	assert.Equal(t, domain.EventUnknown, logRepo.entries[2].DetectedEvent)
}

func TestProcessBatchIsolatesFailures(t *testing.T) {
	lc := &fakeLifecycle{
		outcomes: map[string]*trackerusecase.EventOutcome{
			"Acme": {Created: true},
		},
		errs: map[string]error{
			"TechCorp": errors.New("db unavailable"),
		},
	}
	uc, logRepo := newInboxFixture(lc)

	emails := []domain.InboundEmail{
		{Subject: "Interview Scheduled for Senior Developer at TechCorp"},
		{Subject: "Offer letter from Acme"},
	}

	summary, err := uc.ProcessBatch("user-1", emails)
	require.NoError(t, err)

	// The first email failed but the second still went through.
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Created)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "email 0")

	require.Len(t, logRepo.entries, 2)
	assert.Equal(t, domain.OutcomeError, logRepo.entries[0].Outcome)
	assert.Equal(t, domain.OutcomeCreated, logRepo.entries[1].Outcome)
}
