package domain

import trackerdomain "jobtrail-backend/internal/tracker/domain"

// CompanyCount is one row in the top-companies ranking.
type CompanyCount struct {
	Company string `json:"company"`
	Count   int    `json:"count"`
}

// ReasonCount is one row in the top-rejection-reasons ranking. Reasons are
// verbatim free text; near-duplicates stay distinct buckets.
type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// Dashboard is the read-side metrics payload.
type Dashboard struct {
	TotalApplications    int                          `json:"total_applications"`
	CountsByStatus       map[trackerdomain.Status]int `json:"counts_by_status"`
	InterviewRate        float64                      `json:"interview_rate"`
	OfferRate            float64                      `json:"offer_rate"`
	RejectionRate        float64                      `json:"rejection_rate"`
	ApplicationsThisWeek int                          `json:"applications_this_week"`
	AvgDaysToInterview   float64                      `json:"avg_days_to_interview"`
	TopCompanies         []CompanyCount               `json:"top_companies"`
	TopRejectionReasons  []ReasonCount                `json:"top_rejection_reasons"`
	ZeroInterviewAlert   bool                         `json:"zero_interview_alert"`
}
