package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/postman2oas"
	"github.com/erraggy/postman2oas/internal/fetch"
)

// collectionInput represents the three ways a collection can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type collectionInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Postman collection file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a Postman collection from"`
	Content string `json:"content,omitempty" jsonschema:"Inline Postman collection content (JSON or YAML)"`
}

// load returns the raw collection bytes from whichever input was provided.
func (c collectionInput) load(ctx context.Context) ([]byte, error) {
	count := 0
	for _, s := range []string{c.File, c.URL, c.Content} {
		if s != "" {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	switch {
	case c.File != "":
		return os.ReadFile(c.File) //nolint:gosec // path is supplied by the MCP client
	case c.URL != "":
		return newFetcher().Get(ctx, c.URL)
	default:
		if int64(len(c.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set POSTMAN2OAS_MAX_INLINE_SIZE to increase",
				len(c.Content), cfg.MaxInlineSize)
		}
		return []byte(c.Content), nil
	}
}

// newFetcher builds the fetcher for URL inputs. Private addresses are
// refused unless POSTMAN2OAS_ALLOW_PRIVATE_IPS is set.
func newFetcher() *fetch.Fetcher {
	f := &fetch.Fetcher{
		Attempts:  uint(cfg.FetchAttempts), //nolint:gosec // envInt only returns positive values
		Timeout:   cfg.FetchTimeout,
		UserAgent: postman2oas.UserAgent(),
	}
	if !cfg.AllowPrivateIPs {
		f.Client = fetch.NewSafeClient(cfg.FetchTimeout)
	}
	return f
}
