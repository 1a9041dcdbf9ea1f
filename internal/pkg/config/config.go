package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, secrets)
// - default: Values common across all environments (timeouts, log format)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Checkout CheckoutConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Cookie   CookieConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// BackendConfig points at the external booking REST API this service
// consumes (places, bookings, payment verification, reviews).
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`
}

// CheckoutConfig carries the external checkout provider settings. The
// public key is deliberately not required: its absence must surface as
// a user-visible validation failure at payment time, not a boot crash.
type CheckoutConfig struct {
	PublicKey    string        `envconfig:"CHECKOUT_PUBLIC_KEY"`
	MerchantName string        `envconfig:"CHECKOUT_MERCHANT_NAME" default:"Ease My Booking"`
	SDKBaseURL   string        `envconfig:"CHECKOUT_SDK_BASE_URL" default:"https://checkout.razorpay.com/v1"`
	Timeout      time.Duration `envconfig:"CHECKOUT_TIMEOUT" default:"15s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig shares the HS256 secret with the backend so session tokens
// can be decoded locally for role gating. Tokens are still forwarded
// verbatim on every backend call; the backend stays the authority.
type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"lax"`
}

func (c *BackendConfig) JoinPath(path string) string {
	return strings.TrimRight(c.BaseURL, "/") + path
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:15080",
			Timeout: 5 * time.Second,
		},
		Checkout: CheckoutConfig{
			PublicKey:    "rzp_test_key",
			MerchantName: "Ease My Booking",
			SDKBaseURL:   "http://localhost:15081",
			Timeout:      5 * time.Second,
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
	}
}
