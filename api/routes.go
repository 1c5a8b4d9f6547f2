package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/prafulfillment/namecheap-mcp/api/handlers"
	"github.com/prafulfillment/namecheap-mcp/api/middleware"
	"github.com/prafulfillment/namecheap-mcp/internal/tracing"
	"github.com/prafulfillment/namecheap-mcp/services"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, s *services.Services, apikey string) {
	if s == nil {
		panic("Services cannot be nil")
	}

	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))

	// Liveness endpoint, no auth
	r.GET("/health", handlers.HealthCheck)

	apiKeyMiddleware := middleware.APIKeyMiddleware(middleware.APIKeyConfig{
		HeaderName:  "X-API-KEY",
		ValidAPIKey: apikey,
	})

	v1 := r.Group("/v1")
	v1.Use(apiKeyMiddleware)
	v1.Use(tracing.TracingEnhancer(ctx, ""))
	v1.Use(middleware.RequestIdMiddleware())
	{
		v1.GET("/functions", handlers.ListFunctions(s.RegistryService))
		v1.POST("/call", handlers.CallFunction(s.RegistryService))
	}
}
