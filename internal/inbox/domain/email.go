package domain

import "time"

// EventType is the category an inbound email is classified into.
type EventType string

const (
	EventOfferReceived       EventType = "OFFER"
	EventRejection           EventType = "REJECTION"
	EventInterviewScheduled  EventType = "INTERVIEW_SCHEDULED"
	EventOnlineAssessment    EventType = "OA_SENT"
	EventApplicationReceived EventType = "APPLICATION_RECEIVED"
	EventFeedback            EventType = "FEEDBACK"
	EventUnknown             EventType = "UNKNOWN"
)

// InboundEmail is one record handed in by the caller. The backend never
// reads a mailbox itself.
type InboundEmail struct {
	From      string    `json:"from"`
	Subject   string    `json:"subject" binding:"required"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

// EmailLogOutcome records what the batch processor did with one email.
type EmailLogOutcome string

const (
	OutcomeCreated   EmailLogOutcome = "created"
	OutcomeUpdated   EmailLogOutcome = "updated"
	OutcomeEscalated EmailLogOutcome = "escalated"
	OutcomeSkipped   EmailLogOutcome = "skipped"
	OutcomeError     EmailLogOutcome = "error"
)

// EmailLog is the per-email audit row written for every processed record.
type EmailLog struct {
	ID            string          `json:"id" gorm:"primaryKey"`
	UserID        string          `json:"user_id" gorm:"index;not null"`
	From          string          `json:"from"`
	Subject       string          `json:"subject"`
	Body          string          `json:"body"`
	ReceivedAt    time.Time       `json:"received_at"`
	DetectedEvent EventType       `json:"detected_event"`
	Outcome       EmailLogOutcome `json:"outcome"`
	CreatedAt     time.Time       `json:"created_at"`
}
