package usecase

import (
	"fmt"
	"log"

	inboxdomain "jobtrail-backend/internal/inbox/domain"
	"jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/internal/tracker/repository"
	"jobtrail-backend/pkg/capability"
)

// statusForEvent maps a recognized email event to the status it implies for
// a newly discovered application.
var statusForEvent = map[inboxdomain.EventType]domain.Status{
	inboxdomain.EventApplicationReceived: domain.StatusApplied,
	inboxdomain.EventInterviewScheduled:  domain.StatusInterview,
	inboxdomain.EventOfferReceived:       domain.StatusOffer,
	inboxdomain.EventRejection:           domain.StatusRejected,
	inboxdomain.EventOnlineAssessment:    domain.StatusScreening,
}

// lifecycleUsecase implements LifecycleUsecase
type lifecycleUsecase struct {
	appRepo  repository.ApplicationRepository
	histRepo repository.StatusHistoryRepository
}

// NewLifecycleUsecase creates a new instance of lifecycleUsecase
func NewLifecycleUsecase(appRepo repository.ApplicationRepository, histRepo repository.StatusHistoryRepository) LifecycleUsecase {
	return &lifecycleUsecase{appRepo: appRepo, histRepo: histRepo}
}

func (u *lifecycleUsecase) ApplyEvent(userID, company, role string, event inboxdomain.EventType, email inboxdomain.InboundEmail, by capability.Capability) (*EventOutcome, error) {
	app, err := u.appRepo.FindByUserAndCompany(userID, company)
	if err != nil {
		return nil, err
	}

	if app == nil {
		return u.applyToNew(userID, company, role, event, email, by)
	}
	return u.applyToExisting(app, event, email, by)
}

func (u *lifecycleUsecase) applyToNew(userID, company, role string, event inboxdomain.EventType, email inboxdomain.InboundEmail, by capability.Capability) (*EventOutcome, error) {
	implied, recognized := statusForEvent[event]
	if !recognized {
		// UNKNOWN or FEEDBACK with no application to attach to: nothing to
		// create, defer to a human.
		return &EventOutcome{Escalated: true}, nil
	}

	app := &domain.Application{
		UserID:        userID,
		Company:       company,
		Role:          role,
		CurrentStatus: implied,
	}
	if err := u.appRepo.Create(app, by); err != nil {
		return nil, err
	}

	entry := &domain.StatusHistory{
		ApplicationID: app.ID,
		OldStatus:     "",
		NewStatus:     implied,
		Reason:        fmt.Sprintf("Created from %s email", event),
		EmailSubject:  email.Subject,
		EmailBody:     email.Body,
	}
	if err := u.histRepo.Append(entry, by); err != nil {
		return nil, err
	}

	log.Printf("[Lifecycle] Created application %s (%s) at %s", app.ID, company, implied)
	return &EventOutcome{Created: true, Application: app}, nil
}

func (u *lifecycleUsecase) applyToExisting(app *domain.Application, event inboxdomain.EventType, email inboxdomain.InboundEmail, by capability.Capability) (*EventOutcome, error) {
	old := app.CurrentStatus
	outcome := &EventOutcome{Application: app}
	persist := false

	entry := &domain.StatusHistory{
		ApplicationID: app.ID,
		OldStatus:     old,
		NewStatus:     old,
		EmailSubject:  email.Subject,
		EmailBody:     email.Body,
	}

	switch event {
	case inboxdomain.EventOnlineAssessment:
		// The one guarded transition: OA only advances APPLIED.
		if old == domain.StatusApplied {
			app.CurrentStatus = domain.StatusScreening
			entry.NewStatus = domain.StatusScreening
			entry.Reason = "Online assessment received"
			outcome.Updated = true
			persist = true
		} else {
			entry.Reason = fmt.Sprintf("Online assessment received while %s, no transition", old)
		}

	case inboxdomain.EventApplicationReceived:
		if old == domain.StatusApplied {
			entry.Reason = "Application confirmation received, already APPLIED"
		} else {
			app.CurrentStatus = domain.StatusApplied
			entry.NewStatus = domain.StatusApplied
			entry.Reason = "Application confirmation received"
			outcome.Updated = true
			persist = true
		}

	case inboxdomain.EventInterviewScheduled, inboxdomain.EventOfferReceived, inboxdomain.EventRejection:
		target := statusForEvent[event]
		app.CurrentStatus = target
		entry.NewStatus = target
		entry.Reason = fmt.Sprintf("%s email detected", event)
		outcome.Updated = old != target
		persist = true

	case inboxdomain.EventFeedback:
		// Audit marker only: old == new, application untouched.
		entry.Reason = "Feedback received"

	case inboxdomain.EventUnknown:
		// Record for review, do not touch the application row.
		entry.NewStatus = domain.StatusNeedsReview
		entry.Reason = "Unclassified email, needs manual review"
		outcome.Escalated = true

	default:
		entry.Reason = fmt.Sprintf("Unhandled event %s", event)
	}

	if persist {
		if err := u.appRepo.Update(app, by); err != nil {
			return nil, err
		}
	}
	if err := u.histRepo.Append(entry, by); err != nil {
		return nil, err
	}

	return outcome, nil
}
