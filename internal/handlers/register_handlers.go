package handlers

import (
	"github.com/ahmohbati/forex-backend/cmd/docs"
	portssvc "github.com/ahmohbati/forex-backend/internal/core/ports/services"
	"github.com/ahmohbati/forex-backend/internal/middleware"
	"github.com/ahmohbati/forex-backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facade interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	dbPool *pgxpool.Pool,
) {
	api := r.Group("/api")

	registerHealthRoutes(api, dbPool)
	registerAuthRoutes(api, services.Auth)

	// Currency and rate endpoints are public; conversion previews need no account.
	RegisterCurrencyRoutes(api, services.Currency, services.Rate, services.Conversion)

	// The ledger is only reachable with a validated bearer token.
	protected := api.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterTransactionRoutes(protected, services.Transaction)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
