package mcpserver

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/postman2oas/converter"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertInput struct {
	Collection   collectionInput   `json:"collection"              jsonschema:"The Postman collection to convert"`
	Format       string            `json:"format,omitempty"        jsonschema:"Output format: json or yaml. Defaults to POSTMAN2OAS_FORMAT (yaml)."`
	Output       string            `json:"output,omitempty"        jsonschema:"File path to write the document. If omitted the document is returned inline."`
	FolderPaths  *bool             `json:"folder_paths,omitempty"  jsonschema:"Prefix paths with folder names (default true)"`
	OperationIDs *bool             `json:"operation_ids,omitempty" jsonschema:"Generate operationIds from request names (default true)"`
	Variables    map[string]string `json:"variables,omitempty"     jsonschema:"Variable values that override collection variables"`
	NoInfo       bool              `json:"no_info,omitempty"       jsonschema:"Omit informational issues from the result"`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
}

type convertOutput struct {
	Title          string         `json:"title"`
	TargetVersion  string         `json:"target_version"`
	Success        bool           `json:"success"`
	PathCount      int            `json:"path_count"`
	OperationCount int            `json:"operation_count"`
	SkippedCount   int            `json:"skipped_count"`
	WarningCount   int            `json:"warning_count"`
	IssueCount     int            `json:"issue_count"`
	Issues         []convertIssue `json:"issues,omitempty"`
	WrittenTo      string         `json:"written_to,omitempty"`
	Document       string         `json:"document,omitempty"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format := strings.ToLower(input.Format)
	if format == "" {
		format = cfg.Format
	}
	if !validFormats[format] {
		return errResult(fmt.Errorf("invalid format %q; valid values: json, yaml", input.Format)), convertOutput{}, nil
	}

	data, err := input.Collection.load(ctx)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	result, err := converter.ConvertWithOptions(buildConverterOptions(input, data)...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		Title:          result.Document.Info.Title,
		TargetVersion:  result.TargetVersion,
		Success:        result.Success,
		PathCount:      result.Stats.Paths,
		OperationCount: result.Stats.Operations,
		SkippedCount:   result.Stats.Skipped,
		WarningCount:   result.WarningCount,
		IssueCount:     len(result.Issues),
	}

	if len(result.Issues) > 0 {
		output.Issues = make([]convertIssue, 0, len(result.Issues))
	}
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
		})
	}

	var doc []byte
	switch format {
	case "json":
		doc, err = openapi.MarshalJSON(result.Document)
	default:
		doc, err = openapi.MarshalYAML(result.Document)
	}
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, doc, 0o644); err != nil { //nolint:gosec // output path is supplied by the MCP client
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(doc)
	}

	return nil, output, nil
}

// buildConverterOptions translates the MCP input into converter options.
func buildConverterOptions(input convertInput, data []byte) []converter.Option {
	opts := []converter.Option{
		converter.WithBytes(data),
		converter.WithMaxDepth(cfg.MaxDepth),
		converter.WithIncludeInfo(!input.NoInfo),
	}
	if input.FolderPaths != nil {
		opts = append(opts, converter.WithFolderSegments(*input.FolderPaths))
	}
	if input.OperationIDs != nil {
		opts = append(opts, converter.WithOperationIDs(*input.OperationIDs))
	}
	if len(input.Variables) > 0 {
		opts = append(opts, converter.WithVariables(input.Variables))
	}
	return opts
}
