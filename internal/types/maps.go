package types

import (
	"strings"
)

// GetValueByDottedPath returns a nested value from a map using a dotted path.
// e.g. "components.schemas" returns data["components"]["schemas"].
// Returns nil if any segment is missing or not a map.
func GetValueByDottedPath(data map[string]any, path string) any {
	keys := strings.Split(path, ".")

	var current any = data

	for _, key := range keys {
		if val, ok := current.(map[string]any); ok {
			if nestedVal, nestedOk := val[key]; nestedOk {
				current = nestedVal
			} else {
				return nil
			}
		} else {
			return nil
		}
	}

	return current
}

// CopyMap returns a shallow copy of the given map.
func CopyMap[K comparable, V any](src map[K]V) map[K]V {
	res := make(map[K]V, len(src))
	for k, v := range src {
		res[k] = v
	}
	return res
}
