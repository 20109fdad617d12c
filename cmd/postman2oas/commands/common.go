// Package commands provides CLI command handlers for postman2oas.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/postman2oas"
	"github.com/erraggy/postman2oas/internal/cliutil"
	"github.com/erraggy/postman2oas/openapi"
)

// Output format constants
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
// An empty format is accepted and resolved later from the output path.
func ValidateOutputFormat(format string) error {
	if format != "" && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// ResolveFormat returns format when set, otherwise json for a .json output
// path and yaml for everything else.
func ResolveFormat(format, outputPath string) string {
	if format != "" {
		return format
	}
	if strings.EqualFold(filepath.Ext(outputPath), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// MarshalDocument marshals a document to bytes in the specified format
func MarshalDocument(doc *openapi.Document, format string) ([]byte, error) {
	if format == FormatJSON {
		return openapi.MarshalJSON(doc)
	}
	return openapi.MarshalYAML(doc)
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string, stderr io.Writer) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	if _, err := os.Stat(outputPath); err == nil {
		cliutil.Writef(stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}
	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for the collection.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// OutputHeader writes the common diagnostic header.
func OutputHeader(w io.Writer, specPath string) {
	cliutil.Writef(w, "postman2oas version: %s\n", postman2oas.Version())
	cliutil.Writef(w, "Collection: %s\n", FormatSpecPath(specPath))
}
