package pathutil

import "strings"

// Join builds an absolute path from segments. Each segment is trimmed of
// surrounding slashes and whitespace, and empty segments are dropped, so the
// result never contains "//". A trailing slash is kept only when the final
// segment is itself empty, which is how Postman represents a URL ending in
// "/". Join with no non-empty segments returns "/".
func Join(segments ...string) string {
	var b strings.Builder
	for _, seg := range segments {
		for _, part := range strings.Split(seg, "/") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			b.WriteByte('/')
			b.WriteString(part)
		}
	}
	if b.Len() == 0 {
		return "/"
	}
	if n := len(segments); n > 1 && segments[n-1] == "" {
		b.WriteByte('/')
	}
	return b.String()
}

// Split breaks a raw URL path into segments, dropping a leading slash. A
// trailing slash yields a final empty segment.
func Split(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
