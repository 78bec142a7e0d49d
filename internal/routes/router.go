package routes

import (
	"github.com/IsPeeves/lumenixorg/config"
	"github.com/IsPeeves/lumenixorg/internal/handlers"
	"github.com/IsPeeves/lumenixorg/internal/middleware"
	"github.com/IsPeeves/lumenixorg/internal/repository"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every route of the application. Public routes go first
// (login, the landing page portfolio, health, uploaded files); everything
// else sits behind the auth middleware.
func SetupRoutes(r *gin.Engine) {
	clientHandler := handlers.NewClientHandler(repository.NewClients(config.DB))
	expenseHandler := handlers.NewExpenseHandler(repository.NewExpenses(config.DB))
	projectHandler := handlers.NewProjectHandler(repository.NewProjects(config.DB), config.RDB)
	paymentHandler := handlers.NewPaymentHistoryHandler(repository.NewPaymentHistories(config.DB))
	authHandler := handlers.NewAuthHandler(repository.NewUsers(config.DB))
	uploadHandler := handlers.NewUploadHandler(handlers.UploadsBaseDir())
	reportHandler := handlers.NewReportHandler(
		repository.NewClients(config.DB),
		repository.NewExpenses(config.DB),
	)
	healthHandler := handlers.NewHealthHandler(config.DB)

	// Uploaded images are served statically, same as the rest of the site.
	r.Static("/uploads", handlers.UploadsBaseDir())

	api := r.Group("/api")

	// --- Public routes ---
	api.POST("/auth/login", authHandler.Login)
	api.GET("/projects", projectHandler.List)
	api.GET("/health", healthHandler.Check)

	// --- Protected routes ---
	authRequired := api.Group("")
	authRequired.Use(middleware.AuthMiddleware())
	registerAPIRoutes(authRequired, apiHandlers{
		clients:  clientHandler,
		expenses: expenseHandler,
		projects: projectHandler,
		payments: paymentHandler,
		uploads:  uploadHandler,
		reports:  reportHandler,
	})
}
