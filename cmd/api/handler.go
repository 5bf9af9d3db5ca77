package api

import (
	authUsecase "jobtrail-backend/internal/auth/usecase"
	inboxUsecase "jobtrail-backend/internal/inbox/usecase"
	insightsUsecase "jobtrail-backend/internal/insights/usecase"
	learningUsecase "jobtrail-backend/internal/learning/usecase"
	skillsUsecase "jobtrail-backend/internal/skills/usecase"
	suggestionUsecase "jobtrail-backend/internal/suggestion/usecase"
	trackerUsecase "jobtrail-backend/internal/tracker/usecase"
	"jobtrail-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// Usecases bundles everything the router needs.
type Usecases struct {
	Auth       authUsecase.AuthUsecase
	Inbox      inboxUsecase.InboxUsecase
	Tracker    trackerUsecase.TrackerUsecase
	Aging      trackerUsecase.AgingUsecase
	Suggestion suggestionUsecase.SuggestionUsecase
	Skills     skillsUsecase.SkillsUsecase
	Insights   insightsUsecase.InsightsUsecase
	Learning   learningUsecase.LearningUsecase
}

// Handler owns the Gin engine.
type Handler struct {
	engine *gin.Engine
	config *config.Config
}

// NewHandler wires the router over the usecases.
func NewHandler(uc Usecases, cfg *config.Config) *Handler {
	engine := gin.Default()
	SetupRoutes(engine, uc)

	return &Handler{
		engine: engine,
		config: cfg,
	}
}

// Start runs the HTTP server.
func (h *Handler) Start(addr string) error {
	return h.engine.Run(addr)
}
