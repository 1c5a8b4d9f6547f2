package registry

import (
	"encoding/json"
	"fmt"

	"github.com/prafulfillment/namecheap-mcp/interfaces"
	er "github.com/prafulfillment/namecheap-mcp/internal/errors"
)

// validateParams checks every required parameter is present and every present
// parameter matches its declared type. The first missing field wins.
func validateParams(specs []interfaces.ParamSpec, params map[string]any) error {
	for _, spec := range specs {
		value, ok := params[spec.Name]
		if !ok || value == nil {
			if spec.Required {
				return er.MissingParam(spec.Name)
			}
			continue
		}
		if err := checkParamType(spec, value); err != nil {
			return err
		}
	}
	return nil
}

func checkParamType(spec interfaces.ParamSpec, value any) error {
	switch spec.Type {
	case interfaces.ParamTypeString:
		if _, ok := value.(string); !ok {
			return er.InvalidParam(spec.Name, fmt.Sprintf("expected %s", spec.Type))
		}
	case interfaces.ParamTypeInt:
		switch value.(type) {
		case int, int64, float64:
		default:
			return er.InvalidParam(spec.Name, fmt.Sprintf("expected %s", spec.Type))
		}
	case interfaces.ParamTypeBool:
		if _, ok := value.(bool); !ok {
			return er.InvalidParam(spec.Name, fmt.Sprintf("expected %s", spec.Type))
		}
	case interfaces.ParamTypeStringList:
		if _, err := stringListValue(spec.Name, value); err != nil {
			return err
		}
	case interfaces.ParamTypeHostRecords:
		var records []interfaces.HostRecord
		if err := decodeListValue(spec.Name, value, &records); err != nil {
			return err
		}
	case interfaces.ParamTypeEmailForwards:
		var forwards []interfaces.EmailForward
		if err := decodeListValue(spec.Name, value, &forwards); err != nil {
			return err
		}
	}
	return nil
}

func stringValue(params map[string]any, name string) string {
	value, _ := params[name].(string)
	return value
}

func stringListValue(name string, value any) ([]string, error) {
	switch typed := value.(type) {
	case []string:
		return typed, nil
	case []any:
		result := make([]string, 0, len(typed))
		for _, item := range typed {
			text, ok := item.(string)
			if !ok {
				return nil, er.InvalidParam(name, "expected a list of strings")
			}
			result = append(result, text)
		}
		return result, nil
	default:
		return nil, er.InvalidParam(name, "expected a list of strings")
	}
}

// decodeListValue converts a JSON-decoded list of objects into the typed
// slice the adapter expects. A round-trip through encoding/json keeps the
// field naming rules in one place (the interfaces struct tags).
func decodeListValue(name string, value any, target any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return er.InvalidParam(name, "value is not serializable")
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return er.InvalidParam(name, fmt.Sprintf("malformed list value: %v", err))
	}
	return nil
}
