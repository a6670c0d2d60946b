// Package app wires configuration, storage and use cases for the binaries.
package app

import (
	"context"
	"fmt"
	"time"

	"atelier_ops/internal/adapter/persistence/repository"
	"atelier_ops/internal/config"
	"atelier_ops/internal/domain/pricing"
	"atelier_ops/internal/infrastructure/database"
	"atelier_ops/internal/infrastructure/notification"
	"atelier_ops/internal/infrastructure/payments"
	"atelier_ops/internal/usecase"
	"atelier_ops/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Container holds the use cases shared by the API server and opsctl.
type Container struct {
	Tickets   usecase.ITicketWorkflowUseCase
	Products  usecase.IProductApprovalUseCase
	Migration usecase.IProductMigrationUseCase
	Pricing   usecase.IPricingUseCase
	Payments  usecase.IInvoicePaymentUseCase

	closers []func()
}

// Build connects to DynamoDB and, when configured, Redis. A missing payment
// gateway is logged and leaves invoice payments failing at call time.
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Container, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("connect dynamodb: %w", err)
	}

	ticketRepo := repository.NewTicketDynamoRepository(ddb, cfg.Tables.Tickets)
	productRepo := repository.NewProductDynamoRepository(ddb, cfg.Tables.Products)
	costableRepo := repository.NewCostableDynamoRepository(ddb, cfg.Tables.Materials, cfg.Tables.Processes)
	settingsRepo := repository.NewPricingSettingsDynamoRepository(ddb, cfg.Tables.PricingSettings)
	paymentRepo := repository.NewInvoicePaymentDynamoRepository(ddb, cfg.Tables.Payments)

	c := &Container{}

	var notifier interfaces.ITransitionNotifier
	if addr := cfg.Redis.Addr(); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable at startup", zap.String("addr", addr), zap.Error(err))
		}
		rn := notification.NewRedisTransitionNotifier(rdb, cfg.Notify.Channel, cfg.Notify.QueueSize, cfg.Notify.PublishTimeout, log)
		notifier = rn
		c.closers = append(c.closers, rn.Close, func() { _ = rdb.Close() })
	} else {
		log.Info("redis not configured, transition events go to the log")
		notifier = notification.NewLogNotifier(log)
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mp
	}

	pricingUC := usecase.NewPricingUseCase(costableRepo, settingsRepo, pricing.NewEngine(time.Now), log)
	pricingUC.SetParallelism(cfg.Pricing.RecomputeParallelism)

	c.Tickets = usecase.NewTicketWorkflowUseCase(ticketRepo, notifier, log)
	c.Products = usecase.NewProductApprovalUseCase(productRepo, log)
	c.Migration = usecase.NewProductMigrationUseCase(productRepo, log)
	c.Pricing = pricingUC
	c.Payments = usecase.NewInvoicePaymentUseCase(paymentRepo, ticketRepo, c.Tickets, gateway, usecase.SandboxPayer{
		AccessToken: cfg.MercadoPago.AccessToken,
		Email:       cfg.MercadoPago.TestPayerEmail,
		UserID:      cfg.MercadoPago.TestPayerUserID,
	}, log)
	return c, nil
}

// Close drains the notifier queue and releases the Redis client.
func (c *Container) Close() {
	for _, fn := range c.closers {
		fn()
	}
}
