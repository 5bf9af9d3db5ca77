package domain

import "time"

// Status is the lifecycle stage of a job application.
type Status string

const (
	StatusApplied           Status = "APPLIED"
	StatusScreening         Status = "SCREENING"
	StatusInterview         Status = "INTERVIEW"
	StatusOffer             Status = "OFFER"
	StatusRejected          Status = "REJECTED"
	StatusAccepted          Status = "ACCEPTED"
	StatusArchived          Status = "ARCHIVED"
	StatusNeedsReview       Status = "NEEDS_REVIEW"
	StatusFollowUpSuggested Status = "FOLLOW_UP_SUGGESTED"
	StatusNoResponse        Status = "NO_RESPONSE"
)

// Valid reports whether s is one of the fixed status values.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusOffer,
		StatusRejected, StatusAccepted, StatusArchived, StatusNeedsReview,
		StatusFollowUpSuggested, StatusNoResponse:
		return true
	}
	return false
}

// Terminal reports whether the application has left the pipeline.
// Archived rows are never scanned or transitioned again.
func (s Status) Terminal() bool {
	return s == StatusArchived
}

// Application is one tracked job application. CurrentStatus is authoritative
// for reads; StatusHistory is audit only and is never replayed.
type Application struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	UserID        string     `json:"user_id" gorm:"index;not null"`
	Company       string     `json:"company" gorm:"index;not null"`
	Role          string     `json:"role"`
	CurrentStatus Status     `json:"current_status" gorm:"not null"`
	DaysInStage   int        `json:"days_in_stage"` // Derived, recomputed each aging pass
	AppliedDate   *time.Time `json:"applied_date,omitempty"`
	Description   string     `json:"description,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// StageBase returns the date days-in-stage is measured from.
func (a *Application) StageBase() time.Time {
	if a.AppliedDate != nil {
		return *a.AppliedDate
	}
	return a.CreatedAt
}
