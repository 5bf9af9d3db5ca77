package usecase

import "jobtrail-backend/internal/insights/domain"

// InsightsUsecase computes the dashboard metrics.
type InsightsUsecase interface {
	ComputeDashboard(userID string) (*domain.Dashboard, error)
}
