package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "secret",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.StoreDriver != DriverMongo {
		t.Errorf("expected mongo driver, got %q", cfg.StoreDriver)
	}
	if cfg.EmailDomain != "winner-security.local" {
		t.Errorf("unexpected email domain %q", cfg.EmailDomain)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.Mongo.Database != "shift_scheduler" {
		t.Errorf("unexpected mongo database %q", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected redis addr %q", cfg.Redis.Addr)
	}
	if cfg.IsProduction() {
		t.Error("default env should not be production")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":         "secret",
		"ENV":                "production",
		"STORE_DRIVER":       "postgres",
		"SESSION_TTL":        "30m",
		"POSTGRES_DSN":       "postgres://app@db/app",
		"POSTGRES_MAX_CONNS": "4",
		"REDIS_DB":           "2",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.StoreDriver != DriverPostgres {
		t.Errorf("expected postgres driver, got %q", cfg.StoreDriver)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %s", cfg.SessionTTL)
	}
	if cfg.Postgres.DSN != "postgres://app@db/app" || cfg.Postgres.MaxConns != 4 {
		t.Errorf("unexpected postgres config %+v", cfg.Postgres)
	}
	if cfg.Redis.DB != 2 {
		t.Errorf("expected redis db 2, got %d", cfg.Redis.DB)
	}
	if !cfg.IsProduction() {
		t.Error("expected production")
	}
}

func TestLoadWith_MissingSecret(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestLoadWith_InvalidDriver(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":   "secret",
		"STORE_DRIVER": "sqlite",
	}))
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
