package repository

import (
	"errors"
	"time"

	"jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/pkg/capability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// applicationRepository implements ApplicationRepository using GORM
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new GORM-based ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(app *domain.Application, by capability.Capability) error {
	if err := capability.AuthorizeWrite("applications", by); err != nil {
		return err
	}
	if !app.CurrentStatus.Valid() {
		return errors.New("invalid application status")
	}
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()
	return r.db.Create(app).Error
}

func (r *applicationRepository) Update(app *domain.Application, by capability.Capability) error {
	if err := capability.AuthorizeWrite("applications", by); err != nil {
		return err
	}
	if !app.CurrentStatus.Valid() {
		return errors.New("invalid application status")
	}
	app.UpdatedAt = time.Now()
	return r.db.Save(app).Error
}

func (r *applicationRepository) UpdateDaysInStage(id string, days int, by capability.Capability) error {
	if err := capability.AuthorizeWrite("applications", by); err != nil {
		return err
	}
	// UpdateColumn skips the updated_at bump a Save would do.
	return r.db.Model(&domain.Application{}).Where("id = ?", id).
		UpdateColumn("days_in_stage", days).Error
}

func (r *applicationRepository) FindByID(id string) (*domain.Application, error) {
	var app domain.Application
	err := r.db.Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByUserAndCompany(userID, company string) (*domain.Application, error) {
	var app domain.Application
	err := r.db.Where("user_id = ? AND LOWER(company) = LOWER(?)", userID, company).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByUserID(userID string) ([]*domain.Application, error) {
	var apps []*domain.Application
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindOpenByUserID(userID string) ([]*domain.Application, error) {
	var apps []*domain.Application
	err := r.db.Where("user_id = ? AND current_status <> ?", userID, domain.StatusArchived).
		Order("created_at ASC").Find(&apps).Error
	return apps, err
}
