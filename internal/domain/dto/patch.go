package dto

// Fields collects the stored field names and values a patch changed.
type Fields map[string]any

func set[T any](fields Fields, key string, dst *T, src *T) {
	if src == nil {
		return
	}
	*dst = *src
	fields[key] = *src
}
