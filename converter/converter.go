package converter

import (
	"fmt"
	"regexp"

	"github.com/erraggy/postman2oas/internal/issues"
	"github.com/erraggy/postman2oas/internal/severity"
	"github.com/erraggy/postman2oas/oaserrors"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// DefaultMaxDepth is the folder nesting depth allowed when MaxDepth is zero.
const DefaultMaxDepth = 64

// targetVersionRe matches the OpenAPI versions the converter can emit.
var targetVersionRe = regexp.MustCompile(`^3\.0\.\d+$`)

// Stats counts what a conversion visited and produced.
type Stats struct {
	// Folders is the number of folders walked
	Folders int
	// Requests is the number of request leaves found
	Requests int
	// Skipped is the number of leaves that produced no operation
	Skipped int
	// Paths is the number of distinct path templates in the document
	Paths int
	// Operations is the number of operations in the document
	Operations int
	// SecuritySchemes is the number of entries in components.securitySchemes
	SecuritySchemes int
}

// ConversionResult contains the results of converting a Postman collection
type ConversionResult struct {
	// Document is the converted OpenAPI document
	Document *openapi.Document
	// CollectionName is the name of the source collection
	CollectionName string
	// TargetVersion is the OpenAPI version written to the document
	TargetVersion string
	// Issues contains all conversion issues in the order they were found
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// Stats summarizes the conversion
	Stats Stats
	// Success is true if conversion completed (always true when err is nil
	// outside of strict mode)
	Success bool
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter converts Postman collections to OpenAPI 3.0 documents.
// A Converter holds only configuration and may be reused, including from
// several goroutines at once.
type Converter struct {
	// TargetVersion is the OpenAPI version to emit (3.0.x). Defaults to "3.0.0".
	TargetVersion string
	// FolderSegments prefixes each path with the names of its enclosing folders
	FolderSegments bool
	// OperationIDs generates an operationId for every operation
	OperationIDs bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// StrictMode causes conversion to fail when any warning is reported
	StrictMode bool
	// MaxDepth limits folder nesting. Zero means DefaultMaxDepth.
	MaxDepth int
	// Variables override collection variables when resolving servers
	Variables map[string]string
	// Logger receives debug output. Defaults to NopLogger.
	Logger Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		TargetVersion:  openapi.DefaultVersion,
		FolderSegments: true,
		OperationIDs:   true,
		IncludeInfo:    true,
		MaxDepth:       DefaultMaxDepth,
	}
}

// Convert is a convenience function that converts a collection with default
// settings. It's equivalent to creating a Converter with New() and calling
// Convert().
//
// Example:
//
//	coll, _ := postman.ParseFile("collection.json")
//	result, err := converter.Convert(coll)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := openapi.MarshalYAML(result.Document)
func Convert(coll *postman.Collection) (*ConversionResult, error) {
	return New().Convert(coll)
}

// ConvertValue converts an already-decoded collection value, such as the
// result of json.Unmarshal into an any. Shape errors are returned as
// *oaserrors.InvalidInputError with a nil result.
func (c *Converter) ConvertValue(v any) (*ConversionResult, error) {
	coll, err := postman.FromValue(v)
	if err != nil {
		return nil, err
	}
	return c.Convert(coll)
}

// ConvertBytes parses JSON or YAML bytes and converts the collection.
func (c *Converter) ConvertBytes(data []byte) (*ConversionResult, error) {
	coll, err := postman.Parse(data)
	if err != nil {
		return nil, err
	}
	return c.Convert(coll)
}

// ConvertFile parses the collection stored at path and converts it.
func (c *Converter) ConvertFile(path string) (*ConversionResult, error) {
	coll, err := postman.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return c.Convert(coll)
}

// Convert converts a collection into an OpenAPI document. The document is
// built completely, cleaned and returned; on error no document is returned.
func (c *Converter) Convert(coll *postman.Collection) (*ConversionResult, error) {
	if coll == nil {
		return nil, &oaserrors.InvalidInputError{Path: "(root)", Expected: "object", Actual: "null"}
	}

	target := c.TargetVersion
	if target == "" {
		target = openapi.DefaultVersion
	}
	if !targetVersionRe.MatchString(target) {
		return nil, &oaserrors.ConfigError{
			Option:  "TargetVersion",
			Value:   target,
			Message: "only OpenAPI 3.0.x can be produced",
		}
	}
	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	logger := c.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	name := string(coll.Info.Name)
	logger = logger.With("collection", name)
	logger.Debug("converting collection", "target", target, "items", len(coll.Items))

	w := &walker{
		folderSegments: c.FolderSegments,
		maxDepth:       maxDepth,
		logger:         logger,
	}

	doc := &openapi.Document{
		OpenAPI: target,
		Info:    buildInfo(coll.Info),
		Paths:   openapi.NewPaths(),
	}
	result := &ConversionResult{
		CollectionName: name,
		TargetVersion:  target,
		Issues:         make([]ConversionIssue, 0),
	}

	servers, serverIssues := resolveServers(coll, c.Variables, maxDepth)
	doc.Servers = servers
	result.Issues = append(result.Issues, serverIssues...)

	if coll.Auth != nil {
		resolved := resolveAuth(decodeAuth(coll.Auth))
		if resolved.scheme != nil {
			setScheme(doc, resolved.name, resolved.scheme)
		}
		doc.Security = updateSecurity(doc.Security, resolved.requirement)
		if resolved.note != "" {
			result.Issues = append(result.Issues, ConversionIssue{
				Path: "auth", Message: resolved.note, Severity: resolved.severity,
			})
		}
	}

	frag, err := w.walk(coll.Items, scope{depth: 1}, "item")
	if err != nil {
		logger.Error("conversion aborted", "error", err)
		return nil, err
	}
	mergeFragment(doc, frag, result)

	if c.OperationIDs {
		assignOperationIDs(doc)
	}
	Cleanup(doc)

	result.Document = doc
	result.Stats.Paths = doc.Paths.Len()
	doc.Operations(func(string, string, *openapi.Operation) { result.Stats.Operations++ })
	if doc.Components != nil {
		result.Stats.SecuritySchemes = len(doc.Components.SecuritySchemes)
	}

	c.updateCounts(result)
	for _, issue := range result.Issues {
		if issue.Severity == SeverityWarning {
			logger.Warn(issue.Message, "path", issue.Path)
		}
	}
	result.Success = true
	logger.Info("conversion complete",
		"paths", result.Stats.Paths,
		"operations", result.Stats.Operations,
		"warnings", result.WarningCount,
	)

	if c.StrictMode && result.WarningCount > 0 {
		result.Success = false
		return result, fmt.Errorf("converter: conversion failed in strict mode: %d warning(s)", result.WarningCount)
	}

	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// buildInfo maps collection metadata onto the document info object.
func buildInfo(info postman.Info) openapi.Info {
	version := string(info.Version)
	if version == "" {
		version = "1.0.0"
	}
	return openapi.Info{
		Title:       string(info.Name),
		Description: string(info.Description),
		Version:     version,
	}
}

// updateCounts updates the issue counts in the result
func (c *Converter) updateCounts(result *ConversionResult) {
	result.InfoCount = 0
	result.WarningCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
}
