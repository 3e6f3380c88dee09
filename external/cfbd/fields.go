package cfbd

// Typed readers over a decoded game object. Each takes an ordered list of
// candidate keys and returns the first value of the right type, or the
// default when none match.

func getString(m map[string]any, def string, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key].(string); ok {
			return v
		}
	}
	return def
}

func getBool(m map[string]any, def bool, keys ...string) bool {
	for _, key := range keys {
		if v, ok := m[key].(bool); ok {
			return v
		}
	}
	return def
}

func getInt64(m map[string]any, def int64, keys ...string) int64 {
	for _, key := range keys {
		if v, ok := m[key].(float64); ok {
			return int64(v)
		}
	}
	return def
}

func getInt64Ptr(m map[string]any, keys ...string) *int64 {
	for _, key := range keys {
		if v, ok := m[key].(float64); ok {
			n := int64(v)
			return &n
		}
	}
	return nil
}

func getIntPtr(m map[string]any, keys ...string) *int {
	for _, key := range keys {
		if v, ok := m[key].(float64); ok {
			n := int(v)
			return &n
		}
	}
	return nil
}
