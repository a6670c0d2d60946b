package routes

import (
	_ "atelier_ops/docs"
	"atelier_ops/internal/adapter/http/handlers"
	"atelier_ops/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Tickets   *handlers.TicketHandler
	Products  *handlers.ProductHandler
	Pricing   *handlers.PricingHandler
	Migration *handlers.MigrationHandler
	Payments  *handlers.InvoicePaymentHandler
}

// NewRouter builds the gin engine with middlewares, swagger and the /v1 API.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTicketRoutes(v1, h.Tickets, h.Payments)
	addProductRoutes(v1, h.Products)
	addPricingRoutes(v1, h.Pricing)
	addMigrationRoutes(v1, h.Migration)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Actor())
}
