package utils

import (
	"encoding/json"
	"fmt"
)

// GetNestedString extracts a string from a nested map
func GetNestedString(data map[string]interface{}, keys ...string) (string, error) {
	if len(keys) == 0 {
		return "", fmt.Errorf("invalid keys")
	}

	current := data
	for i, key := range keys {
		if i == len(keys)-1 {
			if str, ok := current[key].(string); ok {
				return str, nil
			}
			return "", fmt.Errorf("key %s is not a string", key)
		}

		nestedMap, ok := current[key].(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("key %s is not a map", key)
		}
		current = nestedMap
	}

	return "", fmt.Errorf("invalid keys")
}

// ParseJSON parses raw JSON into a map
func ParseJSON(raw []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return result, nil
}
