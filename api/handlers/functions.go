package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/prafulfillment/namecheap-mcp/interfaces"
	er "github.com/prafulfillment/namecheap-mcp/internal/errors"
	"github.com/prafulfillment/namecheap-mcp/internal/tracing"
)

type CallRequest struct {
	Function string         `json:"function"`
	Params   map[string]any `json:"params"`
}

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Param   string `json:"param,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ListFunctions is the discovery endpoint: the static function list with
// declared parameter schemas.
func ListFunctions(registry interfaces.RegistryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"functions": registry.ListFunctions(),
		})
	}
}

// CallFunction is the invocation endpoint. It returns either a result payload
// or exactly one structured error kind; nothing opaque crosses this boundary.
func CallFunction(registry interfaces.RegistryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "FunctionsHandler.CallFunction")
		defer span.Finish()
		tracing.TagComponentRest(span)

		var req CallRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
				Kind:    "invalid_request",
				Message: "request body must be a JSON object with a function name and params",
			}})
			return
		}
		if req.Function == "" {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
				Kind:    "invalid_request",
				Message: "function name is required",
			}})
			return
		}
		tracing.TagFunction(span, req.Function)

		result, err := registry.Call(ctx, req.Function, req.Params)
		if err != nil {
			tracing.TraceErr(span, err)
			status, body := errorResponse(err)
			c.JSON(status, ErrorResponse{Error: body})
			return
		}

		c.JSON(http.StatusOK, gin.H{"result": result})
	}
}

// errorResponse maps the error taxonomy onto HTTP statuses: caller mistakes
// are 400s, provider rejections 502, unreachable provider 504.
func errorResponse(err error) (int, ErrorBody) {
	var paramErr *er.ParamError
	var providerErr *er.ProviderError
	var transportErr *er.TransportError

	switch {
	case errors.Is(err, er.ErrUnknownFunction):
		return http.StatusBadRequest, ErrorBody{
			Kind:    "unknown_function",
			Message: err.Error(),
		}
	case errors.As(err, &paramErr):
		kind := "invalid_parameter"
		if paramErr.Missing {
			kind = "missing_parameter"
		}
		return http.StatusBadRequest, ErrorBody{
			Kind:    kind,
			Message: paramErr.Reason,
			Param:   paramErr.Name,
		}
	case errors.As(err, &providerErr):
		return http.StatusBadGateway, ErrorBody{
			Kind:    "provider_rejected",
			Message: providerErr.Message,
			Code:    providerErr.Code,
		}
	case errors.As(err, &transportErr):
		return http.StatusGatewayTimeout, ErrorBody{
			Kind:    "transport_failure",
			Message: transportErr.Error(),
		}
	default:
		return http.StatusInternalServerError, ErrorBody{
			Kind:    "internal",
			Message: err.Error(),
		}
	}
}
