package config

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

var allKeys = []string{
	"PORT", "APP_ENV", "APP_VERSION", "LOG_LEVEL", "LOG_FORMAT", "STORE_DRIVER",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"DYNAMODB_TIMEOUT", "DYNAMODB_CREATE_TABLES", "STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET",
	"STRIPE_WEBHOOK_TOLERANCE", "PAYMENT_GATEWAY_MOCK", "SMTP_HOST", "SMTP_PORT", "SMTP_USER",
	"SMTP_PASS", "SMTP_FROM", "MAIL_TIMEOUT", "APP_URL", "EBOOK_ACCESS_PATH", "EBOOK_NAME",
	"EBOOK_PRICE_CENTS", "EBOOK_CURRENCY", "CHECKOUT_CURRENCY", "CHECKOUT_SESSION_TTL",
	"CHECKOUT_SHIPPING_COUNTRIES", "CORS_ALLOWED_ORIGINS",
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t, allKeys...)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != 8080 || cfg.AppEnv != "development" || cfg.StoreDriver != StoreDriverDynamoDB {
		t.Fatalf("unexpected base defaults: %+v", cfg)
	}
	if cfg.Stripe.WebhookTolerance != 5*time.Minute {
		t.Fatalf("expected 5m tolerance, got %s", cfg.Stripe.WebhookTolerance)
	}
	if cfg.Stripe.Mock {
		t.Fatalf("expected mock disabled by default")
	}
	if cfg.SMTP.Port != 587 || cfg.SMTP.Timeout != 5*time.Second {
		t.Fatalf("unexpected smtp defaults: %+v", cfg.SMTP)
	}
	if cfg.AppURL != "http://localhost:8888" || cfg.EbookAccessPath != "/ebook-acesso.html" {
		t.Fatalf("unexpected url defaults: %s %s", cfg.AppURL, cfg.EbookAccessPath)
	}
	if cfg.Ebook.PriceCents != 4700 || cfg.Ebook.Currency != "brl" {
		t.Fatalf("unexpected ebook defaults: %+v", cfg.Ebook)
	}
	if !reflect.DeepEqual(cfg.Checkout.ShippingCountries, []string{"CH", "DE", "AT", "FR", "IT"}) {
		t.Fatalf("unexpected shipping countries: %v", cfg.Checkout.ShippingCountries)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"*"}) {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
	t.Setenv("DYNAMODB_CREATE_TABLES", "true")
	t.Setenv("STRIPE_WEBHOOK_TOLERANCE", "90s")
	t.Setenv("APP_URL", "https://erdbeergourmet.ch/")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.test, https://b.test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Port != 9090 || cfg.StoreDriver != StoreDriverMemory {
		t.Fatalf("unexpected overrides: port=%d driver=%s", cfg.Port, cfg.StoreDriver)
	}
	if !cfg.Stripe.Mock || !cfg.AWS.CreateTables {
		t.Fatalf("expected boolean flags enabled")
	}
	if cfg.Stripe.WebhookTolerance != 90*time.Second {
		t.Fatalf("expected 90s, got %s", cfg.Stripe.WebhookTolerance)
	}
	if cfg.AppURL != "https://erdbeergourmet.ch" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.AppURL)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"https://a.test", "https://b.test"}) {
		t.Fatalf("unexpected cors origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t, allKeys...)
	t.Setenv("PORT", "eighty")
	t.Setenv("MAIL_TIMEOUT", "soon")
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"PORT", "MAIL_TIMEOUT"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %s in error, got %v", want, err)
		}
	}

	t.Run("unsupported driver", func(t *testing.T) {
		clearEnv(t, allKeys...)
		t.Setenv("STORE_DRIVER", "postgres")
		_, err := Load()
		if err == nil || !strings.Contains(err.Error(), "STORE_DRIVER") {
			t.Fatalf("expected STORE_DRIVER error, got %v", err)
		}
	})
}

func TestIsEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		if !isEnabled(v) {
			t.Fatalf("expected %q enabled", v)
		}
	}
	for _, v := range []string{"", "0", "false", "off"} {
		if isEnabled(v) {
			t.Fatalf("expected %q disabled", v)
		}
	}
}
