package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	AWS         AWSConfig         `mapstructure:"aws"`
	Tables      TablesConfig      `mapstructure:"tables"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Notify      NotifyConfig      `mapstructure:"notify"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Pricing     PricingConfig     `mapstructure:"pricing"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
}

type TablesConfig struct {
	Tickets         string `mapstructure:"tickets"`
	Products        string `mapstructure:"products"`
	Materials       string `mapstructure:"materials"`
	Processes       string `mapstructure:"processes"`
	PricingSettings string `mapstructure:"pricing_settings"`
	Payments        string `mapstructure:"payments"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr is empty when Redis is not configured.
func (c RedisConfig) Addr() string {
	if c.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type NotifyConfig struct {
	Channel        string        `mapstructure:"channel"`
	QueueSize      int           `mapstructure:"queue_size"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

type MercadoPagoConfig struct {
	AccessToken     string `mapstructure:"access_token"`
	Mock            bool   `mapstructure:"mock"`
	TestPayerEmail  string `mapstructure:"test_payer_email"`
	TestPayerUserID string `mapstructure:"test_payer_user_id"`
}

type PricingConfig struct {
	RecomputeParallelism int `mapstructure:"recompute_parallelism"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("tables.tickets", "tickets")
	v.SetDefault("tables.products", "products")
	v.SetDefault("tables.materials", "materials")
	v.SetDefault("tables.processes", "processes")
	v.SetDefault("tables.pricing_settings", "pricing_settings")
	v.SetDefault("tables.payments", "invoice_payments")

	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("notify.channel", "tickets.transitions")
	v.SetDefault("notify.queue_size", 256)
	v.SetDefault("notify.publish_timeout", 2*time.Second)

	v.SetDefault("pricing.recompute_parallelism", 8)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "SERVER_PORT", "PORT")
	v.BindEnv("server.mode", "SERVER_MODE", "GIN_MODE")

	// AWS / DynamoDB
	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("aws.dynamodb_endpoint", "DYNAMODB_ENDPOINT")

	// Tables
	v.BindEnv("tables.tickets", "TICKETS_TABLE")
	v.BindEnv("tables.products", "PRODUCTS_TABLE")
	v.BindEnv("tables.materials", "MATERIALS_TABLE")
	v.BindEnv("tables.processes", "PROCESSES_TABLE")
	v.BindEnv("tables.pricing_settings", "PRICING_SETTINGS_TABLE")
	v.BindEnv("tables.payments", "PAYMENTS_TABLE")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")

	// Notifications
	v.BindEnv("notify.channel", "NOTIFY_CHANNEL")
	v.BindEnv("notify.queue_size", "NOTIFY_QUEUE_SIZE")

	// Mercado Pago
	v.BindEnv("mercadopago.access_token", "MERCADOPAGO_ACCESS_TOKEN")
	v.BindEnv("mercadopago.mock", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")
	v.BindEnv("mercadopago.test_payer_email", "MERCADOPAGO_TEST_PAYER_EMAIL")
	v.BindEnv("mercadopago.test_payer_user_id", "MERCADOPAGO_TEST_PAYER_USER_ID")

	// Pricing
	v.BindEnv("pricing.recompute_parallelism", "PRICING_RECOMPUTE_PARALLELISM")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
}
