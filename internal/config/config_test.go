package config_test

import (
	"os"
	"testing"

	"github.com/amokewustl/belong-chivent/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg := config.Load()

	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("Server.CORSOrigins = %v, want [http://localhost:3000]", cfg.Server.CORSOrigins)
	}
	if cfg.Redis.URL != "localhost:6379" {
		t.Errorf("Redis.URL = %q, want %q", cfg.Redis.URL, "localhost:6379")
	}
	if cfg.Redis.Password != "" {
		t.Errorf("Redis.Password = %q, want empty", cfg.Redis.Password)
	}
	if cfg.Auth.JWTSecret == "" {
		t.Error("Auth.JWTSecret is empty, want development default")
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Setenv("SERVER_ADDR", ":9090")
	os.Setenv("POSTGRES_DSN", "postgres://app:secret@db:5432/events")
	os.Setenv("REDIS_URL", "redis.example.com:6379")
	os.Setenv("REDIS_PASSWORD", "secretpass")
	os.Setenv("JWT_SECRET", "supersecret")
	os.Setenv("CORS_ORIGINS", "https://chivent.example.com, https://admin.chivent.example.com")
	defer os.Clearenv()

	cfg := config.Load()

	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
	if cfg.Postgres.DSN != "postgres://app:secret@db:5432/events" {
		t.Errorf("Postgres.DSN = %q, want custom DSN", cfg.Postgres.DSN)
	}
	if cfg.Redis.URL != "redis.example.com:6379" {
		t.Errorf("Redis.URL = %q, want %q", cfg.Redis.URL, "redis.example.com:6379")
	}
	if cfg.Redis.Password != "secretpass" {
		t.Errorf("Redis.Password = %q, want %q", cfg.Redis.Password, "secretpass")
	}
	if cfg.Auth.JWTSecret != "supersecret" {
		t.Errorf("Auth.JWTSecret = %q, want %q", cfg.Auth.JWTSecret, "supersecret")
	}

	wantOrigins := []string{"https://chivent.example.com", "https://admin.chivent.example.com"}
	if len(cfg.Server.CORSOrigins) != len(wantOrigins) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Server.CORSOrigins, wantOrigins)
	}
	for i, want := range wantOrigins {
		if cfg.Server.CORSOrigins[i] != want {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Server.CORSOrigins[i], want)
		}
	}
}
