package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/veralum/veralum-backend/config"
	"github.com/veralum/veralum-backend/handlers"
	"github.com/veralum/veralum-backend/middleware"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	ContactHandler *handlers.ContactHandler
	CatalogHandler *handlers.CatalogHandler
	HealthHandler  *handlers.HealthHandler
	Logger         *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))

	// Health and Metrics Routes
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler())) // Prometheus metrics endpoint

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Contact form endpoint. The path and response shapes are fixed: the
	// marketing site posts here directly.
	r.POST("/api/contact", deps.ContactHandler.SubmitInquiry)

	// Versioned API Group (v1)
	v1 := r.Group("/v1")
	{
		catalogRoutes := v1.Group("/catalog")
		{
			catalogRoutes.GET("/collections", deps.CatalogHandler.ListCollections)
			catalogRoutes.GET("/collections/:slug", deps.CatalogHandler.GetCollection)
			catalogRoutes.GET("/products", deps.CatalogHandler.ListProducts)
			catalogRoutes.GET("/products/:slug", deps.CatalogHandler.GetProduct)
		}
	}

	return r
}
