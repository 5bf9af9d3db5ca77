package usecase

import (
	"fmt"
	"log"

	"jobtrail-backend/internal/inbox/classify"
	"jobtrail-backend/internal/inbox/domain"
	"jobtrail-backend/internal/inbox/repository"
	trackerusecase "jobtrail-backend/internal/tracker/usecase"
	"jobtrail-backend/pkg/agent"
	"jobtrail-backend/pkg/capability"
)

// inboxUsecase implements InboxUsecase
type inboxUsecase struct {
	classifier *classify.Classifier
	extractor  *classify.Extractor
	lifecycle  trackerusecase.LifecycleUsecase
	logRepo    repository.EmailLogRepository
}

// NewInboxUsecase creates a new instance of inboxUsecase. The classifier's
// pattern catalog is injected by the caller.
func NewInboxUsecase(classifier *classify.Classifier, extractor *classify.Extractor, lifecycle trackerusecase.LifecycleUsecase, logRepo repository.EmailLogRepository) InboxUsecase {
	return &inboxUsecase{
		classifier: classifier,
		extractor:  extractor,
		lifecycle:  lifecycle,
		logRepo:    logRepo,
	}
}

// ProcessBatch classifies each email, extracts company/role, and hands the
// event to the lifecycle updater. A failure on one email is logged and
// recorded in the summary; the rest of the batch proceeds.
func (u *inboxUsecase) ProcessBatch(userID string, emails []domain.InboundEmail) (*agent.RunSummary, error) {
	summary := agent.NewRunSummary()

	for i, email := range emails {
		summary.Processed++

		outcome, event, err := u.processOne(userID, email)
		if err != nil {
			log.Printf("[Inbox] email %d (%q): %v", i, email.Subject, err)
			summary.AddError(fmt.Sprintf("email %d: %v", i, err))
			u.writeLog(userID, email, event, domain.OutcomeError)
			continue
		}

		switch {
		case outcome.Created:
			summary.Created++
			u.writeLog(userID, email, event, domain.OutcomeCreated)
		case outcome.Updated:
			summary.Updated++
			u.writeLog(userID, email, event, domain.OutcomeUpdated)
		case outcome.Escalated:
			summary.Escalated++
			u.writeLog(userID, email, event, domain.OutcomeEscalated)
		default:
			u.writeLog(userID, email, event, domain.OutcomeSkipped)
		}
	}

	return summary, nil
}

func (u *inboxUsecase) processOne(userID string, email domain.InboundEmail) (*trackerusecase.EventOutcome, domain.EventType, error) {
	event := u.classifier.Classify(email.Subject, email.Body)
	company, role := u.extractor.Extract(email.Subject)

	// A missing company is an unrecoverable parse failure for this email:
	// there is nothing to attach the event to, so it is escalated rather
	// than guessed at.
	if company == "" {
		return &trackerusecase.EventOutcome{Escalated: true}, event, nil
	}

	outcome, err := u.lifecycle.ApplyEvent(userID, company, role, event, email, capability.EmailAgent)
	if err != nil {
		return nil, event, err
	}
	return outcome, event, nil
}

func (u *inboxUsecase) writeLog(userID string, email domain.InboundEmail, event domain.EventType, outcome domain.EmailLogOutcome) {
	entry := &domain.EmailLog{
		UserID:        userID,
		From:          email.From,
		Subject:       email.Subject,
		Body:          email.Body,
		ReceivedAt:    email.Timestamp,
		DetectedEvent: event,
		Outcome:       outcome,
	}
	if err := u.logRepo.Create(entry); err != nil {
		log.Printf("[Inbox] failed to write email log: %v", err)
	}
}

func (u *inboxUsecase) GetEmailLog(userID string, limit, offset int) ([]*domain.EmailLog, int64, error) {
	return u.logRepo.FindByUserID(userID, limit, offset)
}
