package routes

import (
	"prompt-vault/config"
	adminapi "prompt-vault/internal/api/admin"
	authapi "prompt-vault/internal/api/auth"
	categoriesapi "prompt-vault/internal/api/categories"
	promptsapi "prompt-vault/internal/api/prompts"
	subscriptionapi "prompt-vault/internal/api/subscription"
	usersapi "prompt-vault/internal/api/users"
	"prompt-vault/internal/app/http/middleware"
	"prompt-vault/internal/domain/entitlement"
	"prompt-vault/internal/infra/tokens"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	tokenSvc := tokens.Default
	engine := entitlement.Default

	r.Use(middleware.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/resend-verification", authapi.ResendVerification)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	if config.GoogleLoginEnabled() {
		public.GET("/auth/google", authapi.GoogleStart)
		public.GET("/auth/google/callback", authapi.GoogleCallback)
	}

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(tokenSvc))
	auth.GET("/me", usersapi.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/subscription", subscriptionapi.GetSubscription)
	auth.GET("/subscription/usage", subscriptionapi.GetUsage)

	auth.GET("/categories", categoriesapi.ListCategories)
	auth.GET("/categories/:id", categoriesapi.GetCategory)

	prompts := auth.Group("/")
	prompts.Use(middleware.MeterUsage(engine, entitlement.UsageAPICalls))
	prompts.GET("/prompts", promptsapi.ListPrompts)
	prompts.GET("/prompts/:id", promptsapi.GetPrompt)
	prompts.POST("/prompts", promptsapi.CreatePrompt)
	prompts.PUT("/prompts/:id", promptsapi.UpdatePrompt)
	prompts.DELETE("/prompts/:id", promptsapi.DeletePrompt)

	// Feature-gated
	export := auth.Group("/")
	export.Use(
		middleware.RequireFeature(engine, "csv-export"),
		middleware.MeterUsage(engine, entitlement.UsageAPICalls),
	)
	export.GET("/export/prompts", promptsapi.ExportPrompts)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(tokenSvc), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.Dashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.POST("/categories", categoriesapi.CreateCategory)
	admin.PUT("/categories/:id", categoriesapi.UpdateCategory)
	admin.DELETE("/categories/:id", categoriesapi.DeleteCategory)
}
