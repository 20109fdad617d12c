package converter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/postman2oas/internal/pathutil"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// baseURLKeys are the normalized variable names taken as an explicit base URL.
var baseURLKeys = map[string]bool{
	"baseurl": true,
	"baseuri": true,
	"apiurl":  true,
	"url":     true,
	"host":    true,
}

// normalizeKey lower-cases a variable name and drops '_' and '-'.
func normalizeKey(key string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(key)))
}

// resolveServers derives the document servers. An explicit base-URL
// variable wins; otherwise the host of the first request that has one is
// used; otherwise no server is emitted.
func resolveServers(coll *postman.Collection, overrides map[string]string, maxDepth int) ([]openapi.Server, []ConversionIssue) {
	var found []ConversionIssue
	lookup := coll.Resolver(overrides)

	for _, key := range baseURLCandidates(coll, overrides) {
		value, _ := lookup(key)
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		serverURL := strings.TrimRight(pathutil.Substitute(value, lookup), "/")
		if pathutil.HasPlaceholder(serverURL) {
			found = append(found, ConversionIssue{
				Path:     "variable",
				Message:  fmt.Sprintf("base URL variable %q has unresolved placeholders; not used as server", key),
				Severity: SeverityInfo,
				Context:  serverURL,
			})
			continue
		}
		if !strings.Contains(serverURL, "://") && !strings.HasPrefix(serverURL, "/") {
			serverURL = "https://" + serverURL
		}
		return []openapi.Server{{URL: serverURL}}, found
	}

	u, loc, ok := firstRequestURL(coll.Items, "item", 1, maxDepth)
	if !ok {
		return nil, found
	}
	host := pathutil.Substitute(u.Host.String(), lookup)
	if pathutil.HasPlaceholder(host) {
		found = append(found, ConversionIssue{
			Path:     loc,
			Message:  "server host has unresolved placeholders; no server emitted",
			Severity: SeverityInfo,
			Context:  host,
		})
		return nil, found
	}

	// A variable may expand to a full URL such as "https://api.example.com/v1".
	if strings.Contains(host, "://") {
		return []openapi.Server{{URL: strings.TrimRight(host, "/")}}, found
	}

	protocol := string(u.Protocol)
	if protocol == "" {
		protocol = "https"
	}
	serverURL := protocol + "://" + host
	if port := pathutil.Substitute(string(u.Port), lookup); port != "" && !pathutil.HasPlaceholder(port) {
		serverURL += ":" + port
	}
	return []openapi.Server{{URL: serverURL}}, found
}

// baseURLCandidates lists base-URL variable names: collection variables in
// declaration order, then names only present in overrides, sorted.
func baseURLCandidates(coll *postman.Collection, overrides map[string]string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, v := range coll.Variable {
		key := string(v.Key)
		if !v.Enabled() || seen[key] || !baseURLKeys[normalizeKey(key)] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}

	extra := make([]string, 0, len(overrides))
	for key := range overrides {
		if !seen[key] && baseURLKeys[normalizeKey(key)] {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

// firstRequestURL finds the URL of the first request, depth first in input
// order, whose URL has a host.
func firstRequestURL(items postman.List[postman.Item], loc string, depth, maxDepth int) (postman.URL, string, bool) {
	if depth > maxDepth {
		return postman.URL{}, "", false
	}
	for i := range items {
		item := &items[i]
		itemLoc := fmt.Sprintf("%s[%d]", loc, i)
		if item.IsFolder() {
			if u, l, ok := firstRequestURL(item.Items, itemLoc+".item", depth+1, maxDepth); ok {
				return u, l, true
			}
			continue
		}
		if item.Request != nil && len(item.Request.URL.Host) > 0 {
			return item.Request.URL, itemLoc + ".request.url", true
		}
	}
	return postman.URL{}, "", false
}
