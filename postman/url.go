package postman

import (
	"fmt"
	"strings"
)

// URL is a request URL. Postman stores it either as a raw string or as an
// object with pre-split components; both decode into this type.
type URL struct {
	Raw      Text        `json:"raw,omitempty"`
	Protocol Text        `json:"protocol,omitempty"`
	Host     Host        `json:"host,omitempty"`
	Port     Text        `json:"port,omitempty"`
	Path     Path        `json:"path,omitempty"`
	Query    List[Param] `json:"query,omitempty"`
	Variable List[Param] `json:"variable,omitempty"`
	Hash     Text        `json:"hash,omitempty"`

	// Malformed is set when Raw could not be split into components.
	Malformed bool `json:"-"`
}

// Host is the list of host labels ("api", "example", "com").
type Host []string

// String joins the labels with dots.
func (h Host) String() string { return strings.Join(h, ".") }

// Path is the list of path segments. A trailing slash is represented by a
// final empty segment.
type Path []string

// ParseURL splits a raw Postman URL into its components. Placeholders such as
// {{baseUrl}} are kept verbatim, so the result is not required to be a valid
// RFC 3986 URL. Whitespace in the host or path outside placeholders and an
// empty authority after "://" are reported as errors.
func ParseURL(raw string) (URL, error) {
	u := URL{Raw: Text(raw)}
	rest := strings.TrimSpace(raw)
	if rest == "" {
		return u, fmt.Errorf("postman: empty url")
	}

	rest, hash, _ := strings.Cut(rest, "#")
	u.Hash = Text(hash)
	rest, query, hasQuery := strings.Cut(rest, "?")
	if hasQuery {
		u.Query = parseQuery(query)
	}
	if strings.ContainsAny(stripPlaceholders(rest), " \t\r\n") {
		return u, fmt.Errorf("postman: malformed url %q: contains whitespace", raw)
	}

	if before, after, ok := strings.Cut(rest, "://"); ok {
		if after == "" || strings.HasPrefix(after, "/") {
			return u, fmt.Errorf("postman: malformed url %q: missing host", raw)
		}
		u.Protocol = Text(before)
		rest = after
	}

	pathPart := ""
	if strings.HasPrefix(rest, "/") {
		pathPart = rest[1:]
	} else {
		authority, after, found := strings.Cut(rest, "/")
		host, port := splitPort(authority)
		u.Port = Text(port)
		if host != "" {
			u.Host = strings.Split(host, ".")
		}
		pathPart = after
		if found && after == "" {
			u.Path = Path{""}
		}
	}
	if pathPart != "" {
		u.Path = strings.Split(pathPart, "/")
	}
	return u, nil
}

// splitPort separates a trailing ":port" from host, ignoring colons inside
// {{...}} placeholders.
func splitPort(host string) (string, string) {
	depth := 0
	idx := -1
	for i := 0; i < len(host); i++ {
		switch host[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				idx = i
			}
		}
	}
	if idx < 0 {
		return host, ""
	}
	return host[:idx], host[idx+1:]
}

// stripPlaceholders removes {{...}} spans so whitespace inside a variable name
// is not mistaken for a malformed URL.
func stripPlaceholders(s string) string {
	var b strings.Builder
	for {
		start := strings.Index(s, "{{")
		if start < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := strings.Index(s[start:], "}}")
		if end < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:start])
		s = s[start+end+2:]
	}
}

func parseQuery(q string) List[Param] {
	var out List[Param]
	for _, pair := range strings.Split(q, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		out = append(out, Param{Key: Text(key), Value: Text(value)})
	}
	return out
}
