package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns lists the dynamic routes, most specific first. Pre-compiled at
// initialization so normalization stays cheap on the request path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/articles/author/\d+$`), template: "/articles/author/:authorId"},
	{pattern: regexp.MustCompile(`^/articles/keyword/[^/]+$`), template: "/articles/keyword/:keyword"},
	{pattern: regexp.MustCompile(`^/articles/date/[^/]+/[^/]+$`), template: "/articles/date/:from/:to"},
	{pattern: regexp.MustCompile(`^/articles/\d+$`), template: "/articles/:id"},
}

// NormalizePath maps dynamic URL paths to template form so metric labels stay
// bounded: /articles/123 becomes /articles/:id, /articles/keyword/politics
// becomes /articles/keyword/:keyword. Static paths such as /healthz and
// /metrics pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
