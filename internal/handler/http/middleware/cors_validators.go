package middleware

import "strings"

// OriginValidator decides whether a cross-origin request may read the response.
type OriginValidator interface {
	IsAllowed(origin string) bool
}

// AnyOrigin accepts every origin. It backs the "*" setting.
type AnyOrigin struct{}

// IsAllowed reports true for any non-empty origin.
func (AnyOrigin) IsAllowed(origin string) bool { return origin != "" }

// WhitelistValidator accepts origins from a fixed list. Comparison ignores
// case and a trailing slash.
type WhitelistValidator struct {
	allowed map[string]struct{}
}

// NewWhitelistValidator builds a validator for origins. Empty entries are skipped.
func NewWhitelistValidator(origins []string) *WhitelistValidator {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o = normalizeOrigin(o); o != "" {
			allowed[o] = struct{}{}
		}
	}
	return &WhitelistValidator{allowed: allowed}
}

// IsAllowed reports whether origin is in the whitelist.
func (v *WhitelistValidator) IsAllowed(origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	_, ok := v.allowed[origin]
	return ok
}

// NewOriginValidator returns AnyOrigin when origins contains "*", and a
// whitelist otherwise.
func NewOriginValidator(origins []string) OriginValidator {
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			return AnyOrigin{}
		}
	}
	return NewWhitelistValidator(origins)
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(strings.TrimSpace(origin)), "/")
}
