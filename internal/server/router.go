package server

import (
	"net/http"

	"salesdesk/internal/auth"
	"salesdesk/internal/config"
	"salesdesk/internal/middleware"
	"salesdesk/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func setupRouter(cfg *config.Config, h *Handlers, tokens *auth.Tokens, store *repository.Store) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetTrustedProxies(nil)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public auth routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	// Everything else requires a bearer token
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens, store.Users))

	protected.GET("/auth/me", h.Auth.Me)

	users := protected.Group("/users")
	{
		users.GET("", h.Users.List)
		users.POST("", h.Users.Create)
		users.GET("/:id", h.Users.Get)
		users.PUT("/:id", h.Users.Update)
		users.PUT("/:id/password", h.Users.ChangePassword)
		users.DELETE("/:id", h.Users.Delete)
	}

	leads := protected.Group("/leads")
	{
		leads.GET("", h.Leads.List)
		leads.POST("", h.Leads.Create)
		leads.GET("/:id", h.Leads.Get)
		leads.PUT("/:id", h.Leads.Update)
		leads.DELETE("/:id", h.Leads.Delete)
	}

	tasks := protected.Group("/tasks")
	{
		tasks.GET("", h.Tasks.List)
		tasks.POST("", h.Tasks.Create)
		tasks.GET("/:id", h.Tasks.Get)
		tasks.PUT("/:id", h.Tasks.Update)
		tasks.DELETE("/:id", h.Tasks.Delete)
	}

	meetings := protected.Group("/meetings")
	{
		meetings.GET("", h.Meetings.List)
		meetings.POST("", h.Meetings.Create)
		meetings.GET("/:id", h.Meetings.Get)
		meetings.PUT("/:id", h.Meetings.Update)
		meetings.DELETE("/:id", h.Meetings.Delete)
	}

	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customers.List)
		customers.POST("", h.Customers.Create)
		customers.GET("/:id", h.Customers.Get)
		customers.PUT("/:id", h.Customers.Update)
		customers.DELETE("/:id", h.Customers.Delete)
	}

	complaints := protected.Group("/complaints")
	{
		complaints.GET("", h.Complaints.List)
		complaints.POST("", h.Complaints.Create)
		complaints.GET("/:id", h.Complaints.Get)
		complaints.PUT("/:id", h.Complaints.Update)
		complaints.DELETE("/:id", h.Complaints.Delete)
	}

	documents := protected.Group("/documents")
	{
		documents.GET("", h.Documents.List)
		documents.POST("", h.Documents.Create)
		documents.GET("/:kind/:id", h.Documents.ListFor)
		documents.DELETE("/:id", h.Documents.Delete)
	}

	activities := protected.Group("/activities")
	{
		activities.GET("", h.Activities.List)
		activities.POST("", h.Activities.Create)
		activities.GET("/:kind/:id", h.Activities.ListFor)
	}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notifications.List)
		notifications.PUT("/:id/read", h.Notifications.MarkRead)
		notifications.DELETE("/:id", h.Notifications.Delete)
	}

	mail := protected.Group("/mail")
	{
		mail.GET("/inbox", h.Mail.Inbox)
		mail.GET("/sent", h.Mail.Sent)
		mail.GET("/starred", h.Mail.Starred)
		mail.POST("/send", h.Mail.Send)
		mail.GET("/:id", h.Mail.Get)
		mail.PUT("/:id/read", h.Mail.ToggleRead)
		mail.PUT("/:id/star", h.Mail.ToggleStar)
		mail.DELETE("/:id", h.Mail.Delete)
	}

	protected.GET("/reports/dashboard", h.Reports.Dashboard)

	return r
}
