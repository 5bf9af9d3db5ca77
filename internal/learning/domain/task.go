package domain

import "time"

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// LearningTask is a generated to-do. Interview-prep tasks link back to the
// application they were generated for; skill tasks carry the skill name.
type LearningTask struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"index;not null"`
	ApplicationID  *string    `json:"application_id,omitempty" gorm:"index"`
	SkillName      string     `json:"skill_name,omitempty" gorm:"index"`
	Title          string     `json:"title" gorm:"not null"`
	Description    string     `json:"description,omitempty"`
	Priority       Priority   `json:"priority" gorm:"default:medium"`
	EstimatedHours int        `json:"estimated_hours"`
	Resources      []string   `json:"resources" gorm:"serializer:json"`
	Completed      bool       `json:"completed" gorm:"default:false"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
