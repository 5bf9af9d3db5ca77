package usecase

import (
	inboxdomain "jobtrail-backend/internal/inbox/domain"
	"jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/pkg/agent"
	"jobtrail-backend/pkg/capability"
)

// EventOutcome reports what ApplyEvent did for one email.
type EventOutcome struct {
	Created     bool
	Updated     bool
	Escalated   bool
	Application *domain.Application
}

// LifecycleUsecase applies one classified email event to the application it
// belongs to, creating the application on first contact.
type LifecycleUsecase interface {
	ApplyEvent(userID, company, role string, event inboxdomain.EventType, email inboxdomain.InboundEmail, by capability.Capability) (*EventOutcome, error)
}

// AgingUsecase runs the scheduled pass over every open application.
type AgingUsecase interface {
	RunAgingPass(userID string) (*agent.RunSummary, error)
}

// TrackerUsecase covers the user-facing CRUD surface.
type TrackerUsecase interface {
	CreateApplication(userID string, req CreateApplicationRequest) (*domain.Application, error)
	GetApplications(userID string) ([]*domain.Application, error)
	GetApplicationByID(userID, id string) (*domain.Application, error)
	GetHistory(userID, applicationID string) ([]*domain.StatusHistory, error)
}

// CreateApplicationRequest is the payload for a manually created application.
type CreateApplicationRequest struct {
	Company     string  `json:"company" binding:"required"`
	Role        string  `json:"role"`
	Description string  `json:"description"`
	AppliedDate *string `json:"applied_date"` // RFC3339
}
