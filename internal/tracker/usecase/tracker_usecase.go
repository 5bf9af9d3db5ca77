package usecase

import (
	"errors"
	"time"

	"jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/internal/tracker/repository"
	"jobtrail-backend/pkg/capability"
)

// trackerUsecase implements TrackerUsecase
type trackerUsecase struct {
	appRepo  repository.ApplicationRepository
	histRepo repository.StatusHistoryRepository
}

// NewTrackerUsecase creates a new instance of trackerUsecase
func NewTrackerUsecase(appRepo repository.ApplicationRepository, histRepo repository.StatusHistoryRepository) TrackerUsecase {
	return &trackerUsecase{appRepo: appRepo, histRepo: histRepo}
}

func (u *trackerUsecase) CreateApplication(userID string, req CreateApplicationRequest) (*domain.Application, error) {
	existing, err := u.appRepo.FindByUserAndCompany(userID, req.Company)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("an application for this company already exists")
	}

	app := &domain.Application{
		UserID:        userID,
		Company:       req.Company,
		Role:          req.Role,
		Description:   req.Description,
		CurrentStatus: domain.StatusApplied,
	}
	if req.AppliedDate != nil && *req.AppliedDate != "" {
		if t, err := time.Parse(time.RFC3339, *req.AppliedDate); err == nil {
			app.AppliedDate = &t
		}
	}

	if err := u.appRepo.Create(app, capability.User); err != nil {
		return nil, err
	}

	entry := &domain.StatusHistory{
		ApplicationID: app.ID,
		OldStatus:     "",
		NewStatus:     domain.StatusApplied,
		Reason:        "Created manually",
	}
	if err := u.histRepo.Append(entry, capability.User); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *trackerUsecase) GetApplications(userID string) ([]*domain.Application, error) {
	return u.appRepo.FindByUserID(userID)
}

func (u *trackerUsecase) GetApplicationByID(userID, id string) (*domain.Application, error) {
	app, err := u.appRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, errors.New("application not found")
	}
	if app.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return app, nil
}

func (u *trackerUsecase) GetHistory(userID, applicationID string) ([]*domain.StatusHistory, error) {
	if _, err := u.GetApplicationByID(userID, applicationID); err != nil {
		return nil, err
	}
	return u.histRepo.FindByApplicationID(applicationID)
}
