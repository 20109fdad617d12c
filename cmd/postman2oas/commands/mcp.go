package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/postman2oas/internal/cliutil"
	"github.com/erraggy/postman2oas/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command. It takes no flags;
// server defaults come from POSTMAN2OAS_* environment variables.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: postman2oas mcp\n\n")
		cliutil.Writef(fs.Output(), "Run the Model Context Protocol server over stdio.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2OAS_FORMAT             default output format (yaml)\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2OAS_MAX_DEPTH          maximum folder nesting depth (64)\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2OAS_FETCH_ATTEMPTS     tries per URL fetch (3)\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2OAS_FETCH_TIMEOUT      timeout per URL fetch (30s)\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2OAS_ALLOW_PRIVATE_IPS  allow fetching from private addresses (false)\n")
		cliutil.Writef(fs.Output(), "  POSTMAN2OAS_MAX_INLINE_SIZE    maximum inline content size in bytes (10MiB)\n")
	}
	return fs
}

// HandleMCP runs the MCP server until stdin closes or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
