package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prafulfillment/namecheap-mcp/interfaces"
	er "github.com/prafulfillment/namecheap-mcp/internal/errors"
)

type stubRegistry struct {
	result any
	err    error
	called string
}

func (s *stubRegistry) ListFunctions() []interfaces.FunctionDescriptor {
	return []interfaces.FunctionDescriptor{
		{Name: "get_dns_list", Title: "Get DNS List", Params: []interfaces.ParamSpec{}},
	}
}

func (s *stubRegistry) Call(ctx context.Context, name string, params map[string]any) (any, error) {
	s.called = name
	return s.result, s.err
}

func performCall(t *testing.T, registry interfaces.RegistryService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/call", CallFunction(registry))

	req := httptest.NewRequest(http.MethodPost, "/v1/call", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func TestListFunctions_ReturnsSchemas(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/functions", ListFunctions(&stubRegistry{}))

	req := httptest.NewRequest(http.MethodGet, "/v1/functions", nil)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"get_dns_list"`)
}

func TestCallFunction_Success(t *testing.T) {
	registry := &stubRegistry{result: &interfaces.DNSUpdateResult{Domain: "example.com", Success: true}}

	recorder := performCall(t, registry, `{"function":"set_default_dns","params":{"domain_name":"example.com"}}`)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "set_default_dns", registry.called)
	assert.Contains(t, recorder.Body.String(), `"success":true`)
}

func TestCallFunction_MalformedBody(t *testing.T) {
	recorder := performCall(t, &stubRegistry{}, `{not json`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"invalid_request"`)
}

func TestCallFunction_EmptyFunctionName(t *testing.T) {
	registry := &stubRegistry{}
	recorder := performCall(t, registry, `{"params":{}}`)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, registry.called)
}

func TestCallFunction_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{
			name:       "unknown function",
			err:        errors.Wrap(er.ErrUnknownFunction, "delete_domain"),
			wantStatus: http.StatusBadRequest,
			wantKind:   "unknown_function",
		},
		{
			name:       "missing parameter",
			err:        er.MissingParam("domain_name"),
			wantStatus: http.StatusBadRequest,
			wantKind:   "missing_parameter",
		},
		{
			name:       "invalid parameter",
			err:        er.InvalidParam("records", "expected list[host_record]"),
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_parameter",
		},
		{
			name:       "provider rejected",
			err:        &er.ProviderError{Code: "2019166", Message: "Domain not found"},
			wantStatus: http.StatusBadGateway,
			wantKind:   "provider_rejected",
		},
		{
			name:       "transport failure",
			err:        &er.TransportError{Op: "namecheap.domains.dns.getList", Err: errors.New("connection refused")},
			wantStatus: http.StatusGatewayTimeout,
			wantKind:   "transport_failure",
		},
		{
			name:       "unclassified",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantKind:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := &stubRegistry{err: tt.err}
			recorder := performCall(t, registry, `{"function":"get_dns_list","params":{}}`)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Contains(t, recorder.Body.String(), `"`+tt.wantKind+`"`)
		})
	}
}

func TestCallFunction_ProviderCodeSurfaced(t *testing.T) {
	registry := &stubRegistry{err: &er.ProviderError{Code: "1011150", Message: "Parameter RequestIP is invalid"}}
	recorder := performCall(t, registry, `{"function":"get_domains","params":{}}`)

	assert.Contains(t, recorder.Body.String(), `"code":"1011150"`)
}
