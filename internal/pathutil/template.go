package pathutil

import (
	"regexp"
	"strings"
)

var (
	// postmanVar matches a {{name}} placeholder.
	postmanVar = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)
	// colonVar matches a whole :name path segment.
	colonVar = regexp.MustCompile(`^:([A-Za-z0-9_.\-]+)$`)
	// templateVar matches an OpenAPI {name} template expression.
	templateVar = regexp.MustCompile(`\{([^{}/]+)\}`)
)

// TranslateSegment converts one path segment from Postman placeholder syntax
// to OpenAPI template syntax. "{{id}}" and ":id" both become "{id}".
func TranslateSegment(seg string) string {
	if m := colonVar.FindStringSubmatch(seg); m != nil {
		return "{" + m[1] + "}"
	}
	return postmanVar.ReplaceAllString(seg, "{$1}")
}

// Translate converts every segment of a slash-separated path.
func Translate(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = TranslateSegment(p)
	}
	return strings.Join(parts, "/")
}

// HasPlaceholder reports whether s still contains a {{name}} placeholder.
func HasPlaceholder(s string) bool {
	return postmanVar.MatchString(s)
}

// Substitute replaces every {{name}} placeholder in s for which lookup
// returns a value. Unknown placeholders are left in place.
func Substitute(s string, lookup func(name string) (string, bool)) string {
	if lookup == nil || !strings.Contains(s, "{{") {
		return s
	}
	return postmanVar.ReplaceAllStringFunc(s, func(match string) string {
		name := postmanVar.FindStringSubmatch(match)[1]
		if v, ok := lookup(name); ok {
			return v
		}
		return match
	})
}

// Params returns the names of the template expressions in an OpenAPI path,
// in order of first appearance and without duplicates.
func Params(template string) []string {
	matches := templateVar.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}
