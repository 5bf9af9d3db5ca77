package repository

import (
	"jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/pkg/capability"
)

// ApplicationRepository defines the interface for application data access.
// Every write carries the capability of the agent performing it.
type ApplicationRepository interface {
	Create(app *domain.Application, by capability.Capability) error
	Update(app *domain.Application, by capability.Capability) error

	// UpdateDaysInStage persists the derived counter without touching
	// updated_at; the inactivity rules measure from that column.
	UpdateDaysInStage(id string, days int, by capability.Capability) error

	FindByID(id string) (*domain.Application, error)
	FindByUserAndCompany(userID, company string) (*domain.Application, error)
	FindByUserID(userID string) ([]*domain.Application, error)

	// FindOpenByUserID returns every non-terminal application for the user.
	FindOpenByUserID(userID string) ([]*domain.Application, error)
}

// StatusHistoryRepository is the append-only audit log. Rows are never
// updated or deleted.
type StatusHistoryRepository interface {
	Append(entry *domain.StatusHistory, by capability.Capability) error
	FindByApplicationID(applicationID string) ([]*domain.StatusHistory, error)

	// FindLatestByNewStatus returns the most recent history row that moved
	// the application into the given status, or nil.
	FindLatestByNewStatus(applicationID string, status domain.Status) (*domain.StatusHistory, error)
}
