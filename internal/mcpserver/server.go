// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the Postman to OpenAPI converter as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/postman2oas"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `postman2oas MCP server: converts Postman Collection v2.1 documents into OpenAPI 3.0 documents.

Configuration: defaults are configurable via POSTMAN2OAS_* environment variables set in your MCP client config.

Key settings:
- POSTMAN2OAS_FORMAT (default: yaml): output format, json or yaml
- POSTMAN2OAS_MAX_DEPTH (default: 64): maximum folder nesting depth
- POSTMAN2OAS_FETCH_ATTEMPTS (default: 3): tries per collection URL
- POSTMAN2OAS_FETCH_TIMEOUT (default: 30s): timeout per URL fetch
- POSTMAN2OAS_ALLOW_PRIVATE_IPS (default: false): allow URLs that resolve to private addresses
- POSTMAN2OAS_MAX_INLINE_SIZE (default: 10MiB): maximum inline content size`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "postman2oas", Version: postman2oas.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Postman Collection v2.1 into an OpenAPI 3.0 document. Provide the collection as a file path, URL, or inline content. Folder names become path prefixes unless folder_paths=false. Returns conversion issues (info and warning) with item locations, counts, and the document inline or written to output. Variables override collection variables when resolving the server URL.",
	}, handleConvert)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
