package config

import (
	"github.com/prafulfillment/namecheap-mcp/internal/logger"
	"github.com/prafulfillment/namecheap-mcp/internal/tracing"
)

type AppConfig struct {
	APIPort string `env:"PORT" envDefault:"5000"`
	APIKey  string `env:"API_KEY,required"`
}

// NamecheapConfig holds the credentials included on every outbound call.
// Loaded once at startup and immutable for the process lifetime.
type NamecheapConfig struct {
	ApiKey      string `env:"NAMECHEAP_API_KEY,required"`
	ApiUser     string `env:"NAMECHEAP_API_USER,required"`
	ApiClientIp string `env:"NAMECHEAP_API_CLIENT_IP,required"`
	Sandbox     bool   `env:"NAMECHEAP_SANDBOX" envDefault:"true"`
	// Url overrides the endpoint selected by Sandbox; used by tests.
	Url            string `env:"NAMECHEAP_URL"`
	TimeoutSeconds int    `env:"NAMECHEAP_TIMEOUT_SECONDS" envDefault:"30"`
}

const (
	ProductionUrl = "https://api.namecheap.com/xml.response"
	SandboxUrl    = "https://api.sandbox.namecheap.com/xml.response"
)

// BaseUrl resolves the endpoint for outbound calls. Sandbox mode is the only
// adapter-wide branching.
func (c *NamecheapConfig) BaseUrl() string {
	if c.Url != "" {
		return c.Url
	}
	if c.Sandbox {
		return SandboxUrl
	}
	return ProductionUrl
}

type Config struct {
	AppConfig       *AppConfig
	Logger          *logger.Config
	Tracing         *tracing.JaegerConfig
	NamecheapConfig *NamecheapConfig
}
