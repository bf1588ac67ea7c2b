package booking

import (
	"sort"
	"strings"
)

// FieldErrors maps a field name to a human-readable message, so a form can
// highlight every failing field from a single call. It is returned as a plain
// value, never thrown; callers extract it with errors.As.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(fe))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}
