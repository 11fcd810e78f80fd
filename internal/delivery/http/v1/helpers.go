package v1

import (
	"strconv"
	"strings"
)

// asString renders a loosely-typed JSON value as a string. Frontend forms
// send year, cgpa and experience fields as either strings or numbers; both
// must survive the trip to the lenient coercion in the usecases.
func asString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// asFloat parses a loosely-typed JSON value as a float, zero on failure.
func asFloat(v any) float64 {
	s := strings.TrimSpace(asString(v))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// asStringList accepts either a JSON array of strings or a single
// comma-separated string and returns the raw elements unsplit.
func asStringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	default:
		return nil
	}
}
