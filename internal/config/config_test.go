package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "abc123")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/howdy")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "abc123")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset")
	}
}

func TestLoad_RequiresAdminPasswordHash(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/howdy")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when ADMIN_PASSWORD_HASH is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/howdy")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "abc123")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_EXPIRY_HOURS", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Auth.JWTExpiry != 24*time.Hour {
		t.Errorf("expected 24h token expiry, got %s", cfg.Auth.JWTExpiry)
	}
	if !cfg.CORS.AllowAllOrigins {
		t.Error("expected development mode to allow all origins")
	}
}

func TestLoad_CORSOriginList(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/howdy")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "abc123")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://howdythrift.farewellcafe.com, https://farewellcafe.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CORS.AllowAllOrigins {
		t.Error("explicit origin list must not allow all origins")
	}
	want := []string{"https://howdythrift.farewellcafe.com", "https://farewellcafe.com"}
	if len(cfg.CORS.AllowedOrigins) != len(want) {
		t.Fatalf("expected %d origins, got %v", len(want), cfg.CORS.AllowedOrigins)
	}
	for i, origin := range want {
		if cfg.CORS.AllowedOrigins[i] != origin {
			t.Errorf("origin %d: expected %s, got %s", i, origin, cfg.CORS.AllowedOrigins[i])
		}
	}
}
