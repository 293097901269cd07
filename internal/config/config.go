package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverDynamoDB = "dynamodb"
	StoreDriverMemory   = "memory"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	Port       int
	AppEnv     string
	AppVersion string

	LogLevel  string
	LogFormat string

	StoreDriver string
	AWS         AWSConfig

	Stripe StripeConfig
	SMTP   SMTPConfig

	AppURL          string
	EbookAccessPath string
	Ebook           EbookConfig
	Checkout        CheckoutConfig

	CORSAllowedOrigins []string
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Timeout         time.Duration
	CreateTables    bool
}

type StripeConfig struct {
	SecretKey        string
	WebhookSecret    string
	WebhookTolerance time.Duration
	Mock             bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Timeout  time.Duration
}

type EbookConfig struct {
	Name        string
	Description string
	ImageURL    string
	PriceCents  int64
	Currency    string
	Source      string
}

type CheckoutConfig struct {
	Currency          string
	SessionTTL        time.Duration
	ShippingCountries []string
	Source            string
}

// Load reads the configuration. Malformed numeric or duration values are
// reported together.
func Load() (Config, error) {
	p := &parser{}
	cfg := Config{
		Port:       p.int("PORT", 8080),
		AppEnv:     getenvDefault("APP_ENV", "development"),
		AppVersion: getenvDefault("APP_VERSION", "1.0.0"),

		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "json"),

		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", StoreDriverDynamoDB)),
		AWS: AWSConfig{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        os.Getenv("DYNAMODB_ENDPOINT"),
			Timeout:         p.duration("DYNAMODB_TIMEOUT", 5*time.Second),
			CreateTables:    isEnabled(os.Getenv("DYNAMODB_CREATE_TABLES")),
		},

		Stripe: StripeConfig{
			SecretKey:        os.Getenv("STRIPE_SECRET_KEY"),
			WebhookSecret:    os.Getenv("STRIPE_WEBHOOK_SECRET"),
			WebhookTolerance: p.duration("STRIPE_WEBHOOK_TOLERANCE", 5*time.Minute),
			Mock:             isEnabled(os.Getenv("PAYMENT_GATEWAY_MOCK")),
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     p.int("SMTP_PORT", 587),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			From:     os.Getenv("SMTP_FROM"),
			Timeout:  p.duration("MAIL_TIMEOUT", 5*time.Second),
		},

		AppURL:          strings.TrimRight(getenvDefault("APP_URL", "http://localhost:8888"), "/"),
		EbookAccessPath: getenvDefault("EBOOK_ACCESS_PATH", "/ebook-acesso.html"),
		Ebook: EbookConfig{
			Name:        getenvDefault("EBOOK_NAME", "Morango Gourmet Profissional - Ebook"),
			Description: getenvDefault("EBOOK_DESCRIPTION", "Guia completo com técnicas secretas para fazer morangos gourmet perfeitos"),
			ImageURL:    os.Getenv("EBOOK_IMAGE_URL"),
			PriceCents:  int64(p.int("EBOOK_PRICE_CENTS", 4700)),
			Currency:    strings.ToLower(getenvDefault("EBOOK_CURRENCY", "brl")),
			Source:      getenvDefault("EBOOK_SOURCE", "morango_gourmet_landing"),
		},
		Checkout: CheckoutConfig{
			Currency:          strings.ToLower(getenvDefault("CHECKOUT_CURRENCY", "chf")),
			SessionTTL:        p.duration("CHECKOUT_SESSION_TTL", 30*time.Minute),
			ShippingCountries: splitList(getenvDefault("CHECKOUT_SHIPPING_COUNTRIES", "CH,DE,AT,FR,IT")),
			Source:            getenvDefault("CHECKOUT_SOURCE", "erdbeergourmet_website"),
		},

		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	switch c.StoreDriver {
	case StoreDriverDynamoDB, StoreDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER: unsupported driver %q", c.StoreDriver))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT: out of range: %d", c.Port))
	}
	if c.Ebook.PriceCents <= 0 {
		errs = append(errs, fmt.Errorf("EBOOK_PRICE_CENTS: must be positive"))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

type parser struct {
	errs []error
}

func (p *parser) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return n
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", key, err))
		return def
	}
	return d
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
