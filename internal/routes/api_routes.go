package routes

import (
	"github.com/IsPeeves/lumenixorg/internal/handlers"

	"github.com/gin-gonic/gin"
)

type apiHandlers struct {
	clients  *handlers.ClientHandler
	expenses *handlers.ExpenseHandler
	projects *handlers.ProjectHandler
	payments *handlers.PaymentHistoryHandler
	uploads  *handlers.UploadHandler
	reports  *handlers.ReportHandler
}

// registerAPIRoutes registers every route that requires authentication.
func registerAPIRoutes(api *gin.RouterGroup, h apiHandlers) {
	clients := api.Group("/clients")
	{
		clients.GET("", h.clients.List)
		clients.GET("/:id", h.clients.Get)
		clients.POST("", h.clients.Create)
		clients.PUT("/:id", h.clients.Update)
		clients.DELETE("/:id", h.clients.Delete)
	}

	expenses := api.Group("/expenses")
	{
		expenses.GET("", h.expenses.List)
		expenses.GET("/:id", h.expenses.Get)
		expenses.POST("", h.expenses.Create)
		expenses.PUT("/:id", h.expenses.Update)
		expenses.DELETE("/:id", h.expenses.Delete)
	}

	projects := api.Group("/projects")
	{
		// The listing itself is public; mutations are not.
		projects.GET("/:id", h.projects.Get)
		projects.POST("", h.projects.Create)
		// POST, not PUT: the PUT tree already has the :id wildcard and the
		// router will not accept a static sibling for the same method.
		projects.POST("/reorder", h.projects.Reorder)
		projects.PUT("/:id", h.projects.Update)
		projects.DELETE("/:id", h.projects.Delete)
	}

	payments := api.Group("/payment-history")
	{
		payments.POST("", h.payments.Create)
		payments.GET("/:clientId", h.payments.ListByClient)
	}

	upload := api.Group("/upload")
	{
		upload.POST("/image", h.uploads.Upload)
		upload.DELETE("/image/:filename", h.uploads.Delete)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/billing", h.reports.Billing)
	}
}
