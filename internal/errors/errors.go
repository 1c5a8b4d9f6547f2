package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownFunction is returned by the registry when the requested function
// name is not registered. The adapter is never reached in that case.
var ErrUnknownFunction = errors.New("unknown function")

// ParamError reports a missing, mistyped or otherwise invalid call parameter.
type ParamError struct {
	Name    string
	Reason  string
	Missing bool
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %s: %s", e.Name, e.Reason)
}

func MissingParam(name string) *ParamError {
	return &ParamError{Name: name, Reason: "required parameter is missing", Missing: true}
}

func InvalidParam(name, reason string) *ParamError {
	return &ParamError{Name: name, Reason: reason}
}

// ProviderError carries a Namecheap error code and message verbatim.
// Returned whenever the API response has Status="ERROR".
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("namecheap api error %s: %s", e.Code, e.Message)
}

// TransportError marks failures that happened before a well-formed provider
// response was obtained: network errors, body read errors, unparseable XML.
// Distinct from ProviderError so callers can tell "provider rejected the
// request" apart from "could not reach the provider".
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("namecheap transport failure during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
