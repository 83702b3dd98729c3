package provider

// Field helpers for normalizers working over decoded JSON records. Upstream
// schemas are only partially known, so every accessor tolerates missing keys
// and wrong types.

// StringField returns the string at key, or nil when the key is absent,
// null, or not a string.
func StringField(m map[string]any, key string) *string {
	if m == nil {
		return nil
	}
	if s, ok := m[key].(string); ok {
		return &s
	}
	return nil
}

// Object returns the nested object at key. Absence of a sub-object must
// never fail normalization, so a missing or non-object value yields nil,
// which the other accessors treat as an empty record.
func Object(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if sub, ok := m[key].(map[string]any); ok {
		return sub
	}
	return nil
}

// FirstString returns the first non-empty string among keys, or "".
func FirstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// FirstValue returns the first present, non-null value among keys.
func FirstValue(m map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := m[key]; ok && v != nil {
			return v
		}
	}
	return nil
}
