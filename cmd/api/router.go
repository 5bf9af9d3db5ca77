package api

import (
	"net/http"

	authDelivery "jobtrail-backend/internal/auth/delivery"
	inboxDelivery "jobtrail-backend/internal/inbox/delivery"
	insightsDelivery "jobtrail-backend/internal/insights/delivery"
	learningDelivery "jobtrail-backend/internal/learning/delivery"
	skillsDelivery "jobtrail-backend/internal/skills/delivery"
	suggestionDelivery "jobtrail-backend/internal/suggestion/delivery"
	trackerDelivery "jobtrail-backend/internal/tracker/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, uc Usecases) {
	authHandler := authDelivery.NewAuthHandler(uc.Auth)
	inboxHandler := inboxDelivery.NewInboxHandler(uc.Inbox)
	trackerHandler := trackerDelivery.NewTrackerHandler(uc.Tracker, uc.Aging)
	suggestionHandler := suggestionDelivery.NewSuggestionHandler(uc.Suggestion)
	skillsHandler := skillsDelivery.NewSkillsHandler(uc.Skills)
	insightsHandler := insightsDelivery.NewInsightsHandler(uc.Insights)
	learningHandler := learningDelivery.NewLearningHandler(uc.Learning)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(uc.Auth), authHandler.Me)
			auth.PUT("/skills", authDelivery.AuthMiddleware(uc.Auth), authHandler.UpdateSkills)
		}

		// Application routes (protected)
		applications := api.Group("/applications")
		applications.Use(authDelivery.AuthMiddleware(uc.Auth))
		{
			applications.GET("", trackerHandler.GetApplications)
			applications.POST("", trackerHandler.CreateApplication)
			applications.GET("/:id", trackerHandler.GetApplicationByID)
			applications.GET("/:id/history", trackerHandler.GetHistory)
		}

		// Inbox audit log (protected)
		inbox := api.Group("/inbox")
		inbox.Use(authDelivery.AuthMiddleware(uc.Auth))
		{
			inbox.GET("/log", inboxHandler.GetEmailLog)
		}

		// Suggestion routes (protected)
		suggestions := api.Group("/suggestions")
		suggestions.Use(authDelivery.AuthMiddleware(uc.Auth))
		{
			suggestions.GET("", suggestionHandler.GetSuggestions)
			suggestions.PATCH("/:id/applied", suggestionHandler.SetApplied)
			suggestions.PATCH("/:id/dismissed", suggestionHandler.SetDismissed)
		}

		// Skill demand routes (protected)
		skills := api.Group("/skills")
		skills.Use(authDelivery.AuthMiddleware(uc.Auth))
		{
			skills.GET("", skillsHandler.GetSkillDemand)
		}

		// Dashboard (protected)
		insights := api.Group("/insights")
		insights.Use(authDelivery.AuthMiddleware(uc.Auth))
		{
			insights.GET("/dashboard", insightsHandler.GetDashboard)
		}

		// Learning task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(uc.Auth))
		{
			tasks.GET("", learningHandler.GetTasks)
			tasks.POST("", learningHandler.CreateTask)
			tasks.GET("/:id", learningHandler.GetTaskByID)
			tasks.PATCH("/:id/complete", learningHandler.CompleteTask)
			tasks.DELETE("/:id", learningHandler.DeleteTask)
		}

		// Agent entry points (protected): one route per scheduled routine,
		// invoked externally on a cron-style schedule. Each returns the
		// structured run summary.
		agents := api.Group("/agents")
		agents.Use(authDelivery.AuthMiddleware(uc.Auth))
		{
			agents.POST("/inbox", inboxHandler.ProcessBatch)
			agents.POST("/aging", trackerHandler.RunAgingPass)
			agents.POST("/match", suggestionHandler.RunMatch)
			agents.POST("/skills", skillsHandler.RunAggregation)
			agents.POST("/learning", learningHandler.RunGeneration)
		}
	}
}
