package handlers

import (
	"log/slog"

	"github.com/SscSPs/workplace_services/cmd/docs"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/middleware"
	"github.com/SscSPs/workplace_services/internal/platform/config"
	"github.com/SscSPs/workplace_services/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Deps are the process-wide collaborators the routes need besides the services.
type Deps struct {
	Logger  *slog.Logger
	Limiter *limiter.Limiter            // nil disables rate limiting
	Posthog *utils.PosthogClientWrapper // nil disables analytics
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Deps,
) {
	r.Use(
		middleware.StructuredLoggingMiddleware(deps.Logger),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Deps,
) {
	v1 := r.Group("/api/v1",
		middleware.OptionalAuthMiddleware(cfg.JWTSecret),
		middleware.PosthogMiddleware(deps.Posthog),
	)

	limit := func(c *gin.Context) { c.Next() }
	if deps.Limiter != nil {
		limit = middleware.RateLimit(deps.Limiter)
	}

	v1.GET("", getHome)
	registerLeaveRequestRoutes(v1, services.LeaveRequest, limit)
	registerTravelExpenseRoutes(v1, services.TravelExpense, services.Dashboard, limit)
	registerTripBookingRoutes(v1, services.TripBooking, limit)
	registerDashboardRoutes(v1, services.Dashboard)
	registerNotificationRoutes(v1, services.Notifications, cfg.JWTSecret)
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
