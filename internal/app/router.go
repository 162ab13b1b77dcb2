package app

import (
	"time"

	"phish_trainer/docs"
	"phish_trainer/internal/config"
	"phish_trainer/internal/middleware"
	"phish_trainer/internal/model"
	"phish_trainer/pkg/api"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/monitoring"
	"phish_trainer/pkg/security"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	loginLimiter := security.NewLimiter(
		cfg.RateLimit.LoginMaxRequests,
		time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
		a.Messages.T(i18n.TooManyRequests),
	)
	go loginLimiter.Sweep(a.stop)

	router.POST(api.PathLogin, loginLimiter.Middleware(), c.auth.Login)
	router.POST(api.PathLogout, c.auth.Logout)

	authorized := router.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg, a.Messages))
	{
		authorized.GET(api.PathUserStats, c.stats.GetUserStats)
		authorized.POST(api.PathUpdateProfile, c.profile.UpdateProfile)
		authorized.POST(api.PathChangePassword, c.profile.ChangePassword)
		authorized.GET(api.PathTests, c.training.ListTests)
		authorized.POST("/test/:id/submit", c.training.SubmitTest)
		authorized.GET(api.PathTestResults, c.training.TestHistory)

		organizers := authorized.Group("/", middleware.RoleMiddleware(a.Messages, model.Organizer))
		organizers.POST(api.PathCreateUser, c.user.CreateUser)
		organizers.GET(api.PathUsers, c.user.ListUsers)
		organizers.POST("/delete_user/:id", c.user.DeleteUser)

		admins := authorized.Group("/", middleware.RoleMiddleware(a.Messages))
		admins.GET("/organization_users/:organization", c.user.OrganizationUsers)
		admins.POST(api.PathCreateTest, c.training.CreateTest)
		admins.POST("/delete_test/:id", c.training.DeleteTest)
	}
}
