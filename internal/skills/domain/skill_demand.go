package domain

import "time"

// SkillDemand is the per-user-per-skill aggregate row. Counts are
// recomputed from the current set of descriptions on every aggregator run;
// RisingTrend is sticky and never cleared once set.
type SkillDemand struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"uniqueIndex:idx_user_skill;not null"`
	SkillName      string    `json:"skill_name" gorm:"uniqueIndex:idx_user_skill;not null"`
	Category       string    `json:"category,omitempty"`
	Frequency      int       `json:"frequency"`
	RisingTrend    bool      `json:"rising_trend" gorm:"default:false"`
	RejectionCount int       `json:"rejection_count"`
	OfferCount     int       `json:"offer_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
