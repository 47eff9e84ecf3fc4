package router

import (
	"github.com/gin-gonic/gin"
	"github.com/lumbunggroup/lumbung-backend/config"
	_ "github.com/lumbunggroup/lumbung-backend/docs" // registers the swagger spec
	"github.com/lumbunggroup/lumbung-backend/handlers"
	"github.com/lumbunggroup/lumbung-backend/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config                *config.Config
	HealthHandler         *handlers.HealthHandler
	SiteHandler           *handlers.SiteHandler
	ContactHandler        *handlers.ContactHandler
	ContactSessionHandler *handlers.ContactSessionHandler
	Logger                *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	if len(deps.Config.Server.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil && deps.Logger != nil {
			deps.Logger.Warnw("Ignoring invalid trusted proxies", "error", err)
		}
	}

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	if !deps.Config.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/v1")
	{
		v1.GET("/site", deps.SiteHandler.GetSiteInfo)

		contactRoutes := v1.Group("/contact")
		{
			contactRoutes.GET("/schema", deps.ContactHandler.GetSchema)
			contactRoutes.POST("", deps.ContactHandler.Submit)

			sessionRoutes := contactRoutes.Group("/sessions")
			{
				sessionRoutes.POST("", deps.ContactSessionHandler.CreateSession)
				sessionRoutes.GET("/:id", deps.ContactSessionHandler.GetSession)
				sessionRoutes.DELETE("/:id", deps.ContactSessionHandler.DeleteSession)
				sessionRoutes.PUT("/:id/fields/:key", deps.ContactSessionHandler.EditField)
				sessionRoutes.POST("/:id/submit", deps.ContactSessionHandler.SubmitSession)
				sessionRoutes.POST("/:id/acknowledge", deps.ContactSessionHandler.AcknowledgeSession)
			}
		}
	}

	return r
}
