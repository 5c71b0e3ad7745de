// Package pathutil maps request paths onto a bounded set of metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// Unmatched is the label used for any path the API does not serve.
const Unmatched = "/unmatched"

// PathPattern pairs a dynamic route pattern with its label template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/find/[^/]+$`), Template: "/find/:video_id"},
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

var staticPaths = map[string]struct{}{
	"/":                {},
	"/ping":            {},
	"/publish":         {},
	"/random":          {},
	"/random/day":      {},
	"/random/interval": {},
	"/count":           {},
	"/search/day":      {},
	"/search/interval": {},
	"/health":          {},
	"/ready":           {},
	"/live":            {},
	"/metrics":         {},
}

// NormalizePath returns the label for path. Video IDs are replaced by a
// placeholder and unknown paths collapse into Unmatched, so scanners probing
// random URLs cannot grow the label set.
//
//	NormalizePath("/find/dQw4w9WgXcQ")  // "/find/:video_id"
//	NormalizePath("/random/day?day=x")  // "/random/day"
//	NormalizePath("/wp-login.php")      // "/unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return Unmatched
}

// GetExpectedCardinality returns the upper bound of distinct labels NormalizePath produces.
func GetExpectedCardinality() int {
	return len(staticPaths) + len(pathPatterns) + 1
}
