package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env  string
	Port string

	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string

	FormEndpointURL string

	PaymentProvider   string // razorpay | sandbox
	RazorpayKeyID     string
	RazorpayKeySecret string
	SandboxDelay      time.Duration

	R2Endpoint      string
	R2AccessKey     string
	R2SecretKey     string
	R2Bucket        string
	R2PublicBaseURL string

	AdminEmail    string
	AdminPassword string
}

// Load reads the environment, pulling in a .env file outside production.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{
		Env:               getenv("APP_ENV", "development"),
		Port:              getenv("PORT", "8000"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		CORSOrigins:       splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		FormEndpointURL:   os.Getenv("FORM_ENDPOINT_URL"),
		PaymentProvider:   getenv("PAYMENT_PROVIDER", "sandbox"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		SandboxDelay:      2 * time.Second,
		R2Endpoint:        os.Getenv("R2_ENDPOINT"),
		R2AccessKey:       os.Getenv("R2_ACCESS_KEY"),
		R2SecretKey:       os.Getenv("R2_SECRET_KEY"),
		R2Bucket:          os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}

	if v := os.Getenv("SANDBOX_PAYMENT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("SANDBOX_PAYMENT_DELAY: %w", err)
		}
		cfg.SandboxDelay = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"JWT_SECRET": c.JWTSecret,
	}

	if c.PaymentProvider == "razorpay" {
		required["RAZORPAY_KEY_ID"] = c.RazorpayKeyID
		required["RAZORPAY_KEY_SECRET"] = c.RazorpayKeySecret
	} else if c.PaymentProvider != "sandbox" {
		return fmt.Errorf("unknown PAYMENT_PROVIDER %q", c.PaymentProvider)
	}

	if c.Env == "production" {
		required["DATABASE_URL"] = c.DatabaseURL
		if c.PaymentProvider == "sandbox" {
			return fmt.Errorf("sandbox payments are not allowed in production")
		}
	}

	for k, v := range required {
		if v == "" {
			return fmt.Errorf("missing env var: %s", k)
		}
	}
	return nil
}

// R2Enabled reports whether receipt archiving has everything it needs.
func (c *Config) R2Enabled() bool {
	return c.R2Endpoint != "" && c.R2AccessKey != "" && c.R2SecretKey != "" && c.R2Bucket != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
