package config

import "testing"

func TestValidateRequiresDatabaseURL(t *testing.T) {
	cfg := Load()
	cfg.DatabaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateProductionRequiresSecret(t *testing.T) {
	cfg := Load()
	cfg.DatabaseURL = "postgres://localhost/docman"
	cfg.Environment = "production"
	cfg.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET in production")
	}
}

func TestValidateDefaultsPass(t *testing.T) {
	cfg := Load()
	cfg.DatabaseURL = "postgres://localhost/docman"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestGetEnvBoolFallback(t *testing.T) {
	t.Setenv("DOCMAN_TEST_BOOL", "not-a-bool")
	if got := getEnvBool("DOCMAN_TEST_BOOL", true); !got {
		t.Fatal("expected fallback for unparseable bool")
	}
}
