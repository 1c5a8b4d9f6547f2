package services

import (
	"github.com/prafulfillment/namecheap-mcp/config"
	"github.com/prafulfillment/namecheap-mcp/interfaces"
	"github.com/prafulfillment/namecheap-mcp/internal/logger"
	"github.com/prafulfillment/namecheap-mcp/services/namecheap"
	"github.com/prafulfillment/namecheap-mcp/services/registry"
)

type Services struct {
	NamecheapService interfaces.NamecheapService
	RegistryService  interfaces.RegistryService
}

func InitServices(cfg *config.Config, log logger.Logger) *Services {
	namecheapService := namecheap.NewNamecheapService(cfg.NamecheapConfig, log)

	return &Services{
		NamecheapService: namecheapService,
		RegistryService:  registry.NewRegistryService(log, namecheapService),
	}
}
