package platform

import "fmt"

// Args is the decoded argument map of a method call.
type Args map[string]any

func toArgs(value any) Args {
	switch m := value.(type) {
	case map[string]any:
		return Args(m)
	case Args:
		return m
	case map[any]any:
		converted := make(Args, len(m))
		for key, val := range m {
			if keyString, ok := key.(string); ok {
				converted[keyString] = val
			}
		}
		return converted
	default:
		return nil
	}
}

// String returns the string stored under key, or "" when absent or not a string.
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// Int returns the integer stored under key. JSON numbers arrive as float64.
func (a Args) Int(key string) (int, bool) {
	switch n := a[key].(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	default:
		return 0, false
	}
}

// Map returns the nested map stored under key, or nil.
func (a Args) Map(key string) map[string]any {
	if m := toArgs(a[key]); m != nil {
		return map[string]any(m)
	}
	return nil
}
