package usecase

import (
	"strings"
	"time"

	"jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/google/uuid"
)

// memoryAppRepo is an in-memory ApplicationRepository that mirrors the
// capability checks of the GORM implementation.
type memoryAppRepo struct {
	apps map[string]*domain.Application
}

func newMemoryAppRepo() *memoryAppRepo {
	return &memoryAppRepo{apps: make(map[string]*domain.Application)}
}

func (r *memoryAppRepo) Create(app *domain.Application, by capability.Capability) error {
	if err := capability.AuthorizeWrite("applications", by); err != nil {
		return err
	}
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()
	stored := *app
	r.apps[app.ID] = &stored
	return nil
}

func (r *memoryAppRepo) Update(app *domain.Application, by capability.Capability) error {
	if err := capability.AuthorizeWrite("applications", by); err != nil {
		return err
	}
	app.UpdatedAt = time.Now()
	stored := *app
	r.apps[app.ID] = &stored
	return nil
}

func (r *memoryAppRepo) UpdateDaysInStage(id string, days int, by capability.Capability) error {
	if err := capability.AuthorizeWrite("applications", by); err != nil {
		return err
	}
	// Column write only; UpdatedAt stays put.
	if app, ok := r.apps[id]; ok {
		app.DaysInStage = days
	}
	return nil
}

func (r *memoryAppRepo) FindByID(id string) (*domain.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, nil
	}
	copied := *app
	return &copied, nil
}

func (r *memoryAppRepo) FindByUserAndCompany(userID, company string) (*domain.Application, error) {
	for _, app := range r.apps {
		if app.UserID == userID && strings.EqualFold(app.Company, company) {
			copied := *app
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memoryAppRepo) FindByUserID(userID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, app := range r.apps {
		if app.UserID == userID {
			copied := *app
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryAppRepo) FindOpenByUserID(userID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, app := range r.apps {
		if app.UserID == userID && !app.CurrentStatus.Terminal() {
			copied := *app
			out = append(out, &copied)
		}
	}
	return out, nil
}

// memoryHistRepo is an in-memory append-only StatusHistoryRepository.
type memoryHistRepo struct {
	entries []*domain.StatusHistory
}

func newMemoryHistRepo() *memoryHistRepo {
	return &memoryHistRepo{}
}

func (r *memoryHistRepo) Append(entry *domain.StatusHistory, by capability.Capability) error {
	if err := capability.AuthorizeWrite("status_history", by); err != nil {
		return err
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	entry.DetectedBy = string(by)
	entry.CreatedAt = time.Now()
	stored := *entry
	r.entries = append(r.entries, &stored)
	return nil
}

func (r *memoryHistRepo) FindByApplicationID(applicationID string) ([]*domain.StatusHistory, error) {
	var out []*domain.StatusHistory
	for _, e := range r.entries {
		if e.ApplicationID == applicationID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memoryHistRepo) FindLatestByNewStatus(applicationID string, status domain.Status) (*domain.StatusHistory, error) {
	for i := len(r.entries) - 1; i >= 0; i-- {
		e := r.entries[i]
		if e.ApplicationID == applicationID && e.NewStatus == status {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}
