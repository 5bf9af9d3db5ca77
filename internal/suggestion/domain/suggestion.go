package domain

import "time"

// JobSuggestion is a discovered external posting, unique by source URL.
// Applied and Dismissed are user-facing filters only; no automated process
// ever flips them.
type JobSuggestion struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	SourceURL   string    `json:"source_url" gorm:"uniqueIndex;not null"`
	MatchScore  float64   `json:"match_score"` // 0-100
	Applied     bool      `json:"applied" gorm:"default:false"`
	Dismissed   bool      `json:"dismissed" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// JobPosting is one external posting handed to the match routine.
type JobPosting struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url" binding:"required"`
}
