package interfaces

import "context"

// ParamType tags the value shape a function parameter accepts.
type ParamType string

const (
	ParamTypeString        ParamType = "string"
	ParamTypeInt           ParamType = "integer"
	ParamTypeBool          ParamType = "boolean"
	ParamTypeStringList    ParamType = "list[string]"
	ParamTypeHostRecords   ParamType = "list[host_record]"
	ParamTypeEmailForwards ParamType = "list[email_forward]"
)

type ParamSpec struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Required    bool      `json:"required"`
	Description string    `json:"description,omitempty"`
}

// FunctionDescriptor is the discoverable schema of one registered function.
type FunctionDescriptor struct {
	Name        string      `json:"name"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Params      []ParamSpec `json:"params"`
}

// RegistryService exposes the uniform calling convention over the adapter.
type RegistryService interface {
	// ListFunctions returns the static function list with declared schemas.
	// Pure, no side effects.
	ListFunctions() []FunctionDescriptor
	// Call validates params against the named function's schema and invokes
	// the adapter operation. Typed adapter errors propagate unchanged.
	Call(ctx context.Context, name string, params map[string]any) (any, error)
}
