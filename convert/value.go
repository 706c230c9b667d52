package convert

import "strings"

// ToBool tries to interpret v as a boolean switch
func ToBool(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "t", "on", "yes":
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// Normalize maps decoded values onto the element types used by sequences:
// all integer kinds become int, float32 becomes float64, everything else is kept.
func Normalize(v any) any {
	switch v := v.(type) {
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return float64(v)
	default:
		return v
	}
}
