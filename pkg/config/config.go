package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "voltkart"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Session  SessionConfig
	Redis    RedisConfig
	Checkout CheckoutConfig
	Captcha  CaptchaConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VOLTKART_APP_ENV" default:"dev"`
	Port         string `envconfig:"VOLTKART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"VOLTKART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VOLTKART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type SessionConfig struct {
	TTL time.Duration `envconfig:"VOLTKART_SESSION_TTL" default:"24h"`
}

// RedisConfig is optional: when URL is empty the service keeps all session
// state in process memory.
type RedisConfig struct {
	URL          string        `envconfig:"VOLTKART_REDIS_URL"`
	Address      string        `envconfig:"VOLTKART_REDIS_ADDR"`
	Password     string        `envconfig:"VOLTKART_REDIS_PASSWORD"`
	DB           int           `envconfig:"VOLTKART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VOLTKART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VOLTKART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VOLTKART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VOLTKART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VOLTKART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis backend was configured.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type CheckoutConfig struct {
	ProcessingDelay time.Duration `envconfig:"VOLTKART_CHECKOUT_PROCESSING_DELAY" default:"1500ms"`
	ReturnURL       string        `envconfig:"VOLTKART_CHECKOUT_RETURN_URL" default:"https://voltkart.example.com/order-success"`
	GatewayBaseURL  string        `envconfig:"VOLTKART_CHECKOUT_GATEWAY_BASE_URL" default:"https://payment-demo.example.com"`
}

func (c CheckoutConfig) validate() error {
	if strings.TrimSpace(c.GatewayBaseURL) == "" {
		return fmt.Errorf("checkout gateway base url is required")
	}
	if strings.TrimSpace(c.ReturnURL) == "" {
		return fmt.Errorf("checkout return url is required")
	}
	return nil
}

type CaptchaConfig struct {
	Length int           `envconfig:"VOLTKART_CAPTCHA_LENGTH" default:"5"`
	TTL    time.Duration `envconfig:"VOLTKART_CAPTCHA_TTL" default:"10m"`
}
