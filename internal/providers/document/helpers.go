package document

import (
	"fmt"

	"github.com/GriffinCanCode/htmldoc/internal/types"
)

// Success creates successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// UnknownToolFailure reports a tool ID this provider does not serve
func UnknownToolFailure(toolID string) (*types.Result, error) {
	return Failure(fmt.Sprintf("unknown tool: %s", toolID))
}

// GetString extracts string from params with validation
func GetString(params map[string]interface{}, key string) (string, bool) {
	val, ok := params[key].(string)
	if !ok {
		return "", false
	}
	return val, true
}

// GetBool extracts bool from params with default
func GetBool(params map[string]interface{}, key string, defaultVal bool) bool {
	val, ok := params[key].(bool)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt extracts int from params with validation
func GetInt(params map[string]interface{}, key string) (int, bool) {
	switch v := params[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}
