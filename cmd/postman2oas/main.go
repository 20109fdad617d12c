package main

import (
	"fmt"
	"os"

	"github.com/erraggy/postman2oas"
	"github.com/erraggy/postman2oas/cmd/postman2oas/commands"
)

// commandNames lists every top-level command, in usage order.
var commandNames = []string{"convert", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("postman2oas v%s\n", postman2oas.Version())
		fmt.Printf("commit: %s\n", postman2oas.Commit())
		fmt.Printf("built: %s\n", postman2oas.BuildTime())
		fmt.Printf("go: %s\n", postman2oas.GoVersion())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest command within edit distance 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`postman2oas - Postman collection to OpenAPI converter

Usage:
  postman2oas <command> [options]

Commands:
  convert     Convert a Postman v2.1 collection file or URL to OpenAPI 3.0
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  postman2oas convert collection.json -o openapi.yaml
  postman2oas convert -f json https://example.com/collection.json
  postman2oas mcp

Run 'postman2oas <command> --help' for more information on a command.`)
}
