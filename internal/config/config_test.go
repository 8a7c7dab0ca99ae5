package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":      "mongodb://localhost:27017",
		"STRIPE_SECRET_KEY": "sk_test",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":5000" {
		t.Fatalf("expected default address, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseName != "banglaDrop" {
		t.Fatalf("expected default database name, got %q", cfg.DatabaseName)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":9000", "-n", "testdrop", "-shutdown-timeout", "3s"},
		lookupFrom(map[string]string{
			"RUN_ADDRESS":       ":8000",
			"DATABASE_URI":      "mongodb://localhost:27017",
			"STRIPE_SECRET_KEY": "sk_test",
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9000" {
		t.Fatalf("expected flag to win, got %q", cfg.RunAddress)
	}
	if cfg.DatabaseName != "testdrop" {
		t.Fatalf("expected database name override, got %q", cfg.DatabaseName)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected 3s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database uri", env: map[string]string{"STRIPE_SECRET_KEY": "sk_test"}},
		{name: "missing stripe key", env: map[string]string{"DATABASE_URI": "mongodb://localhost"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(nil, lookupFrom(tt.env)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadStripeSecretFromFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "stripe.key")
	if err := os.WriteFile(secretFile, []byte("sk_from_file"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":           "mongodb://localhost:27017",
		"STRIPE_SECRET_KEY_FILE": secretFile,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StripeSecretKey != "sk_from_file" {
		t.Fatalf("expected secret from file, got %q", cfg.StripeSecretKey)
	}
}

func TestLoadInvalidShutdownTimeoutFlag(t *testing.T) {
	_, err := load([]string{"-shutdown-timeout", "soon"}, lookupFrom(map[string]string{
		"DATABASE_URI":      "mongodb://localhost:27017",
		"STRIPE_SECRET_KEY": "sk_test",
	}))
	if err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
