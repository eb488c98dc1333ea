package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Address the HTTP/websocket server listens on
	Addr string `envconfig:"SPYFALL_ADDR" default:":8080"`

	// Externally reachable base URL, used for QR join links
	PublicURL string `envconfig:"SPYFALL_PUBLIC_URL" default:"http://localhost:8080"`

	// Prometheus metric namespace
	MetricsNamespace string `envconfig:"SPYFALL_METRICS_NAMESPACE" default:"spyfall"`

	// Grace period for in-flight requests on shutdown
	ShutdownTimeout time.Duration `envconfig:"SPYFALL_SHUTDOWN_TIMEOUT" default:"10s"`
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
