package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != defaultPort || cfg.StoreDriver != defaultStoreDriver {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("expected default token ttl, got %v", cfg.TokenTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, ,https://app.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.TokenTTL != 2*time.Hour {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://app.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Setenv("PORT", "70000")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out of range port")
	}

	t.Setenv("PORT", "8080")
	t.Setenv("HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad duration")
	}

	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoadRejectsNonPositiveDurations(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")

	for _, key := range []string{"STORE_TIMEOUT", "HTTP_TIMEOUT", "TOKEN_TTL"} {
		for _, v := range []string{"0", "0s", "-1h"} {
			t.Run(key+"="+v, func(t *testing.T) {
				t.Setenv("STORE_TIMEOUT", "")
				t.Setenv("HTTP_TIMEOUT", "")
				t.Setenv("TOKEN_TTL", "")
				t.Setenv(key, v)
				if _, err := Load(); err == nil {
					t.Fatalf("expected error for %s=%s", key, v)
				}
			})
		}
	}
}
