package handlers

import (
	"strconv"

	"github.com/kambeshwar/creditnote_backend/cmd/docs"
	portssvc "github.com/kambeshwar/creditnote_backend/internal/core/ports/services"
	"github.com/kambeshwar/creditnote_backend/internal/middleware"
	"github.com/kambeshwar/creditnote_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Register public authentication routes
	registerAuthRoutes(r, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerPartyRoutes(v1, services.Party)
	registerTemplateRoutes(v1, services.Template)
	registerSettingsRoutes(v1, services.Settings)
	registerAuditRoutes(v1, services.Audit)
	registerReportingRoutes(v1, services.Reporting)
	RegisterCreditNoteRoutes(v1, services.CreditNote, issueRateLimiter(cfg))
}

// issueRateLimiter guards the issue endpoint; every accepted request spends a
// sequence number whether or not dispatch succeeds.
func issueRateLimiter(cfg *config.Config) gin.HandlerFunc {
	if cfg.IssueRateLimit <= 0 {
		return nil
	}
	rate, err := limiter.NewRateFromFormatted(strconv.FormatInt(cfg.IssueRateLimit, 10) + "-M")
	if err != nil {
		return nil
	}
	return middleware.RateLimit(limiter.New(memory.NewStore(), rate))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
