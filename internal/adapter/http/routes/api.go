package routes

import (
	"net/http"

	"atelier_ops/internal/adapter/http/handlers"
	"atelier_ops/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathTickets    = "/tickets"
	PathProducts   = "/products"
	PathPricing    = "/pricing"
	PathMigrations = "/migrations"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addTicketRoutes(rg *gin.RouterGroup, tickets *handlers.TicketHandler, payments *handlers.InvoicePaymentHandler) {
	group := rg.Group(PathTickets)
	{
		group.GET("/:id", tickets.GetTicket)
		group.GET("/:id/transitions", tickets.AllowedTransitions)
		group.GET("/:id/payments", payments.ListPayments)
	}

	writes := rg.Group(PathTickets, middleware.RequireActor())
	{
		writes.POST("", tickets.CreateTicket)
		writes.POST("/:id/transitions", tickets.Transition)
		writes.POST("/:id/reopen", tickets.Reopen)
		writes.POST("/:id/payments/:kind", payments.PayInvoice)
	}
}

func addProductRoutes(rg *gin.RouterGroup, products *handlers.ProductHandler) {
	rg.GET(PathProducts+"/:id", products.GetProduct)

	writes := rg.Group(PathProducts, middleware.RequireActor())
	{
		writes.POST("", products.CreateProduct)
		writes.POST("/:id/submit", products.Submit)
		writes.POST("/:id/approve", products.Approve)
		writes.POST("/:id/decline", products.Decline)
		writes.POST("/:id/unpublish", products.Unpublish)
		writes.POST("/:id/republish", products.Republish)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, pricing *handlers.PricingHandler) {
	group := rg.Group(PathPricing)
	{
		group.GET("/settings", pricing.GetSettings)
		group.GET("/status", pricing.Status)
		group.GET("/materials/:id/quote", pricing.QuoteMaterial)
		group.PUT("/settings", middleware.RequireActor(), pricing.UpdateSettings)
		group.POST("/recompute", middleware.RequireActor(), pricing.Recompute)
	}
}

func addMigrationRoutes(rg *gin.RouterGroup, migration *handlers.MigrationHandler) {
	group := rg.Group(PathMigrations)
	{
		group.GET("/products", migration.ProductStatus)
		group.POST("/products/run", middleware.RequireActor(), migration.RunProducts)
	}
}
