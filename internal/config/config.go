package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress              string
	DatabaseURI             string
	DatabaseName            string
	StripeSecretKey         string
	FirebaseCredentialsFile string
	ShutdownTimeout         time.Duration
}

const (
	defaultRunAddress      = ":5000"
	defaultDatabaseName    = "banglaDrop"
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:              getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:             getString(lookup, "DATABASE_URI", ""),
		DatabaseName:            getString(lookup, "DATABASE_NAME", defaultDatabaseName),
		StripeSecretKey:         getString(lookup, "STRIPE_SECRET_KEY", ""),
		FirebaseCredentialsFile: getString(lookup, "FIREBASE_CREDENTIALS_FILE", ""),
		ShutdownTimeout:         getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("bangladrop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	shutdownTimeoutStr := cfg.ShutdownTimeout.String()

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "MongoDB connection URI")
	fs.StringVar(&cfg.DatabaseName, "n", cfg.DatabaseName, "MongoDB database name")
	fs.StringVar(&cfg.StripeSecretKey, "stripe-key", cfg.StripeSecretKey, "Stripe secret key")
	fs.StringVar(&cfg.FirebaseCredentialsFile, "firebase-credentials", cfg.FirebaseCredentialsFile, "Firebase service account file")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("STRIPE_SECRET_KEY_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read stripe secret file: %w", err)
		}
		cfg.StripeSecretKey = string(content)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("stripe secret key must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
