package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type GatewayConfig struct {
	Port       string `envconfig:"GATEWAY_PORT" default:"8080"`
	CoreURL    string `envconfig:"CORE_SERVICE_URL" default:"http://localhost:8081"`
	EmailURL   string `envconfig:"EMAIL_SERVICE_URL" default:"http://localhost:8081"`
	CORS       CORSConfig
	Log        LogConfig
	ServerName string `envconfig:"GATEWAY_NAME" default:"bookfair-gateway"`
}

func LoadGatewayConfig() (GatewayConfig, error) {
	if err := loadDotEnv(); err != nil {
		return GatewayConfig{}, err
	}

	var cfg GatewayConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return GatewayConfig{}, fmt.Errorf("failed to process gateway env config: %w", err)
	}
	return cfg, nil
}
