package assets

import (
	"strconv"
)

// Return the string if it's available, else returns the fallback.
func getStringOrDefault(data map[string]any, key string, fallback string) string {
	if val, ok := data[key].(string); ok {
		return val
	}
	return fallback
}

// Return the id as a string, numbers are printed without decimals.
// Missing or invalid ids become "0".
func getIDString(data map[string]any, key string) string {
	switch val := data[key].(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	default:
		return "0"
	}
}

// Return the list of objects under the key, skipping anything that isn't an object.
func getObjectList(data map[string]any, key string) []map[string]any {
	list, ok := data[key].([]any)
	if !ok {
		return nil
	}

	objects := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if object, ok := item.(map[string]any); ok {
			objects = append(objects, object)
		}
	}
	return objects
}
