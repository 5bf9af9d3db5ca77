package usecase

import (
	"fmt"
	"log"
	"time"

	"jobtrail-backend/internal/tracker/domain"
	"jobtrail-backend/internal/tracker/repository"
	"jobtrail-backend/pkg/agent"
	"jobtrail-backend/pkg/capability"
)

// Aging thresholds in whole days. Fixed for every user.
const (
	followUpAfterDays       = 7
	noResponseAfterDays     = 14
	archiveRejectedWithDays = 3
)

// agingUsecase implements AgingUsecase
type agingUsecase struct {
	appRepo  repository.ApplicationRepository
	histRepo repository.StatusHistoryRepository
	now      func() time.Time
}

// NewAgingUsecase creates a new instance of agingUsecase
func NewAgingUsecase(appRepo repository.ApplicationRepository, histRepo repository.StatusHistoryRepository) AgingUsecase {
	return &agingUsecase{
		appRepo:  appRepo,
		histRepo: histRepo,
		now:      time.Now,
	}
}

// RunAgingPass recomputes days-in-stage for every open application and
// applies the threshold transitions. The three rules are checked in order
// against the in-memory row, so one pass can compound rule 1 into rule 2.
func (u *agingUsecase) RunAgingPass(userID string) (*agent.RunSummary, error) {
	apps, err := u.appRepo.FindOpenByUserID(userID)
	if err != nil {
		return nil, err
	}

	summary := agent.NewRunSummary()
	now := u.now()

	for _, app := range apps {
		summary.Processed++
		if err := u.ageApplication(app, now, summary); err != nil {
			log.Printf("[Aging] application %s: %v", app.ID, err)
			summary.AddError(fmt.Sprintf("application %s: %v", app.ID, err))
		}
	}

	return summary, nil
}

func (u *agingUsecase) ageApplication(app *domain.Application, now time.Time, summary *agent.RunSummary) error {
	// Rules 2 and 3 are defined against the last update the user or an
	// email produced. The days-in-stage refresh is bookkeeping and goes
	// through a column write that leaves updated_at alone, so a pass that
	// fires no rule never resets the inactivity window for later passes.
	lastUpdate := app.UpdatedAt

	app.DaysInStage = wholeDays(now.Sub(app.StageBase()))
	if err := u.appRepo.UpdateDaysInStage(app.ID, app.DaysInStage, capability.AgingAgent); err != nil {
		return err
	}

	// Rule 1: stale APPLIED gets a follow-up suggestion.
	if app.CurrentStatus == domain.StatusApplied && app.DaysInStage >= followUpAfterDays {
		if err := u.transition(app, domain.StatusFollowUpSuggested,
			fmt.Sprintf("No response after %d days.", app.DaysInStage)); err != nil {
			return err
		}
		summary.Updated++
	}

	// Rule 2: still silent after the follow-up window.
	if (app.CurrentStatus == domain.StatusApplied || app.CurrentStatus == domain.StatusFollowUpSuggested) &&
		wholeDays(now.Sub(lastUpdate)) >= noResponseAfterDays &&
		app.CurrentStatus != domain.StatusArchived {
		if err := u.transition(app, domain.StatusNoResponse,
			fmt.Sprintf("No activity for %d days.", wholeDays(now.Sub(lastUpdate)))); err != nil {
			return err
		}
		summary.Updated++
	}

	// Rule 3: quick rejections are archived without a history row.
	if app.CurrentStatus == domain.StatusRejected &&
		lastUpdate.Sub(app.CreatedAt) <= archiveRejectedWithDays*24*time.Hour {
		app.CurrentStatus = domain.StatusArchived
		if err := u.appRepo.Update(app, capability.AgingAgent); err != nil {
			return err
		}
		summary.Updated++
	}

	return nil
}

func (u *agingUsecase) transition(app *domain.Application, to domain.Status, reason string) error {
	old := app.CurrentStatus
	app.CurrentStatus = to
	if err := u.appRepo.Update(app, capability.AgingAgent); err != nil {
		return err
	}
	return u.histRepo.Append(&domain.StatusHistory{
		ApplicationID: app.ID,
		OldStatus:     old,
		NewStatus:     to,
		Reason:        reason,
	}, capability.AgingAgent)
}

// wholeDays truncates a duration to full elapsed days.
func wholeDays(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}
