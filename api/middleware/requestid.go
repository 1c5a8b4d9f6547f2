package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"

	"github.com/prafulfillment/namecheap-mcp/internal/tracing"
)

const RequestIdHeader = "X-Request-Id"

// RequestIdMiddleware assigns each request a correlation id, echoed in the
// response and tagged on the active span.
func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.New().String()
		}
		c.Header(RequestIdHeader, requestId)

		if span := opentracing.SpanFromContext(c.Request.Context()); span != nil {
			span.SetTag(tracing.SpanTagRequestId, requestId)
		}

		c.Next()
	}
}
