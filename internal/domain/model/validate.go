package model

import (
	"strings"

	"storefront/internal/domain/apperror"
)

func oneOf[T ~string](field string, value T, allowed ...T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}

	names := make([]string, 0, len(allowed))
	for _, a := range allowed {
		names = append(names, string(a))
	}

	return apperror.Validationf(field, "invalid %s %q: must be one of %s", field, value, strings.Join(names, ", "))
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperror.Validationf(field, "%s is required", field)
	}

	return nil
}

// NormalizeTags trims tags, drops empty ones and duplicates, keeping order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}

// SplitTags parses a comma separated tag list.
func SplitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	return NormalizeTags(strings.Split(raw, ","))
}
