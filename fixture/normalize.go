package fixture

import (
	"fmt"
	"math"
)

// normalize converts decoded YAML values into the types a Go test would
// write by hand: integers become int where they fit, and maps get string
// keys.
func normalize(value any) any {
	switch v := value.(type) {
	case uint64:
		if v <= math.MaxInt {
			return int(v)
		}

		return v
	case int64:
		return int(v)
	case []any:
		return normalizeAll(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = normalize(item)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalize(item)
		}

		return out
	}

	return value
}

func normalizeAll(values []any) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = normalize(value)
	}

	return out
}
