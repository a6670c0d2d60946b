package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "atelier_ops/docs"
	"atelier_ops/internal/adapter/http/handlers"
	"atelier_ops/internal/adapter/http/routes"
	"atelier_ops/internal/app"
	"atelier_ops/internal/config"
	"atelier_ops/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Atelier Ops API
// @version         1.0
// @description     Ticket workflow, product approval and pricing for the jewelry operations console.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-ID
// @description Caller id resolved by the gateway; X-Actor-Role carries admin, staff or artisan.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	ctx := context.Background()
	container, err := app.Build(ctx, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to build application", zap.Error(err))
	}
	defer container.Close()

	router := routes.NewRouter(routes.Handlers{
		Tickets:   handlers.NewTicketHandler(container.Tickets),
		Products:  handlers.NewProductHandler(container.Products),
		Pricing:   handlers.NewPricingHandler(container.Pricing),
		Migration: handlers.NewMigrationHandler(container.Migration),
		Payments:  handlers.NewInvoicePaymentHandler(container.Payments, zapLogger),
	}, zapLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
