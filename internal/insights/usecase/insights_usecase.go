package usecase

import (
	"log"
	"sort"
	"time"

	"jobtrail-backend/internal/insights/domain"
	trackerdomain "jobtrail-backend/internal/tracker/domain"
	trackerrepo "jobtrail-backend/internal/tracker/repository"
)

// zeroInterviewAlertFloor is the application count above which a zero
// interview rate raises the alert flag.
const zeroInterviewAlertFloor = 5

// insightsUsecase implements InsightsUsecase
type insightsUsecase struct {
	appRepo  trackerrepo.ApplicationRepository
	histRepo trackerrepo.StatusHistoryRepository
	now      func() time.Time
}

// NewInsightsUsecase creates a new instance of insightsUsecase
func NewInsightsUsecase(appRepo trackerrepo.ApplicationRepository, histRepo trackerrepo.StatusHistoryRepository) InsightsUsecase {
	return &insightsUsecase{
		appRepo:  appRepo,
		histRepo: histRepo,
		now:      time.Now,
	}
}

// ComputeDashboard is pure read-side arithmetic over the application set.
func (u *insightsUsecase) ComputeDashboard(userID string) (*domain.Dashboard, error) {
	apps, err := u.appRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	dash := &domain.Dashboard{
		CountsByStatus: make(map[trackerdomain.Status]int),
	}
	dash.TotalApplications = len(apps)

	weekAgo := u.now().AddDate(0, 0, -7)
	companyCounts := make(map[string]int)
	interviewDays := 0
	interviewCount := 0

	for _, app := range apps {
		dash.CountsByStatus[app.CurrentStatus]++
		companyCounts[app.Company]++

		if app.CreatedAt.After(weekAgo) {
			dash.ApplicationsThisWeek++
		}
		if app.CurrentStatus == trackerdomain.StatusInterview {
			interviewDays += app.DaysInStage
			interviewCount++
		}
	}

	if total := dash.TotalApplications; total > 0 {
		dash.InterviewRate = float64(dash.CountsByStatus[trackerdomain.StatusInterview]) / float64(total)
		dash.OfferRate = float64(dash.CountsByStatus[trackerdomain.StatusOffer]) / float64(total)
		dash.RejectionRate = float64(dash.CountsByStatus[trackerdomain.StatusRejected]) / float64(total)
	}
	if interviewCount > 0 {
		dash.AvgDaysToInterview = float64(interviewDays) / float64(interviewCount)
	}

	dash.TopCompanies = topCompanies(companyCounts, 5)
	dash.TopRejectionReasons = u.topRejectionReasons(apps, 5)
	dash.ZeroInterviewAlert = dash.TotalApplications > zeroInterviewAlertFloor && dash.InterviewRate == 0

	return dash, nil
}

// topRejectionReasons buckets the verbatim reason text of each
// application's most recent REJECTED history row. No normalization:
// near-duplicate phrasings are distinct keys.
func (u *insightsUsecase) topRejectionReasons(apps []*trackerdomain.Application, n int) []domain.ReasonCount {
	reasonCounts := make(map[string]int)

	for _, app := range apps {
		entry, err := u.histRepo.FindLatestByNewStatus(app.ID, trackerdomain.StatusRejected)
		if err != nil {
			log.Printf("[Insights] history lookup for %s: %v", app.ID, err)
			continue
		}
		if entry == nil || entry.Reason == "" {
			continue
		}
		reasonCounts[entry.Reason]++
	}

	out := make([]domain.ReasonCount, 0, len(reasonCounts))
	for reason, count := range reasonCounts {
		out = append(out, domain.ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func topCompanies(counts map[string]int, n int) []domain.CompanyCount {
	out := make([]domain.CompanyCount, 0, len(counts))
	for company, count := range counts {
		out = append(out, domain.CompanyCount{Company: company, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Company < out[j].Company
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
