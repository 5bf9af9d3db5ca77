package domain

import "time"

// StatusHistory is the append-only audit log of status transitions.
// Rows are immutable once written. A row with OldStatus == NewStatus is a
// no-op marker kept for audit, not a real transition.
type StatusHistory struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	ApplicationID string    `json:"application_id" gorm:"index;not null"`
	OldStatus     Status    `json:"old_status"`
	NewStatus     Status    `json:"new_status"`
	Reason        string    `json:"reason"`
	EmailSubject  string    `json:"email_subject,omitempty"` // Raw email kept for manual audit
	EmailBody     string    `json:"email_body,omitempty"`
	DetectedBy    string    `json:"detected_by" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
}
