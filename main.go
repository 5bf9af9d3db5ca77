package main

import (
	"log"

	api "jobtrail-backend/cmd/api"
	authdomain "jobtrail-backend/internal/auth/domain"
	authRepo "jobtrail-backend/internal/auth/repository"
	authUsecase "jobtrail-backend/internal/auth/usecase"
	"jobtrail-backend/internal/inbox/classify"
	inboxdomain "jobtrail-backend/internal/inbox/domain"
	inboxRepo "jobtrail-backend/internal/inbox/repository"
	inboxUsecase "jobtrail-backend/internal/inbox/usecase"
	insightsUsecase "jobtrail-backend/internal/insights/usecase"
	learningdomain "jobtrail-backend/internal/learning/domain"
	learningRepo "jobtrail-backend/internal/learning/repository"
	"jobtrail-backend/internal/learning/scheduler"
	learningUsecase "jobtrail-backend/internal/learning/usecase"
	skillsdomain "jobtrail-backend/internal/skills/domain"
	skillsRepo "jobtrail-backend/internal/skills/repository"
	skillsUsecase "jobtrail-backend/internal/skills/usecase"
	suggestiondomain "jobtrail-backend/internal/suggestion/domain"
	suggestionRepo "jobtrail-backend/internal/suggestion/repository"
	suggestionUsecase "jobtrail-backend/internal/suggestion/usecase"
	trackerdomain "jobtrail-backend/internal/tracker/domain"
	trackerRepo "jobtrail-backend/internal/tracker/repository"
	trackerUsecase "jobtrail-backend/internal/tracker/usecase"
	"jobtrail-backend/pkg/config"
	"jobtrail-backend/pkg/database"
	"jobtrail-backend/pkg/mailer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&trackerdomain.Application{},
		&trackerdomain.StatusHistory{},
		&inboxdomain.EmailLog{},
		&suggestiondomain.JobSuggestion{},
		&skillsdomain.SkillDemand{},
		&learningdomain.LearningTask{},
	); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	applicationRepository := trackerRepo.NewApplicationRepository(db)
	historyRepository := trackerRepo.NewStatusHistoryRepository(db)
	emailLogRepository := inboxRepo.NewEmailLogRepository(db)
	suggestionRepository := suggestionRepo.NewSuggestionRepository(db)
	skillDemandRepository := skillsRepo.NewSkillDemandRepository(db)
	learningTaskRepository := learningRepo.NewLearningTaskRepository(db)

	// Initialize use cases
	authUc := authUsecase.NewAuthUsecase(userRepository, cfg)
	lifecycleUc := trackerUsecase.NewLifecycleUsecase(applicationRepository, historyRepository)
	trackerUc := trackerUsecase.NewTrackerUsecase(applicationRepository, historyRepository)
	agingUc := trackerUsecase.NewAgingUsecase(applicationRepository, historyRepository)

	classifier := classify.NewClassifier(classify.DefaultCatalog())
	extractor := classify.NewExtractor()
	inboxUc := inboxUsecase.NewInboxUsecase(classifier, extractor, lifecycleUc, emailLogRepository)

	suggestionUc := suggestionUsecase.NewSuggestionUsecase(suggestionRepository, userRepository)
	skillsUc := skillsUsecase.NewSkillsUsecase(skillDemandRepository, applicationRepository, skillsdomain.DefaultCatalog())
	insightsUc := insightsUsecase.NewInsightsUsecase(applicationRepository, historyRepository)
	learningUc := learningUsecase.NewLearningUsecase(learningTaskRepository, applicationRepository, skillDemandRepository)

	// Start the digest scheduler if enabled and a mail key is configured
	if cfg.SchedulerEnabled && cfg.MailAPIKey != "" {
		mailService := mailer.NewService(cfg.MailAPIKey, cfg.MailAPIBaseURL, cfg.MailSender)
		digest := scheduler.NewDigestScheduler(learningTaskRepository, userRepository, mailService, cfg.DigestInterval)
		digest.Start()
	} else {
		log.Println("[WARN] Digest scheduler disabled (no mail API key or disabled by config)")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(api.Usecases{
		Auth:       authUc,
		Inbox:      inboxUc,
		Tracker:    trackerUc,
		Aging:      agingUc,
		Suggestion: suggestionUc,
		Skills:     skillsUc,
		Insights:   insightsUc,
		Learning:   learningUc,
	}, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
