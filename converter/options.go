package converter

import (
	"fmt"
	"io"
	"maps"

	"github.com/erraggy/postman2oas/internal/options"
	"github.com/erraggy/postman2oas/oaserrors"
	"github.com/erraggy/postman2oas/openapi"
	"github.com/erraggy/postman2oas/postman"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	filePath   *string
	reader     io.Reader
	bytes      []byte
	value      any
	hasValue   bool
	collection *postman.Collection

	// Configuration options
	targetVersion  string
	folderSegments bool
	operationIDs   bool
	includeInfo    bool
	strictMode     bool
	maxDepth       int
	variables      map[string]string
	logger         Logger
}

// ConvertWithOptions converts a Postman collection using functional options.
// This combines input source selection and configuration in a single call.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("collection.json"),
//	    converter.WithOperationIDs(false),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	c := &Converter{
		TargetVersion:  cfg.targetVersion,
		FolderSegments: cfg.folderSegments,
		OperationIDs:   cfg.operationIDs,
		IncludeInfo:    cfg.includeInfo,
		StrictMode:     cfg.strictMode,
		MaxDepth:       cfg.maxDepth,
		Variables:      cfg.variables,
		Logger:         cfg.logger,
	}

	switch {
	case cfg.filePath != nil:
		return c.ConvertFile(*cfg.filePath)
	case cfg.reader != nil:
		coll, err := postman.ParseReader(cfg.reader)
		if err != nil {
			return nil, err
		}
		return c.Convert(coll)
	case cfg.bytes != nil:
		return c.ConvertBytes(cfg.bytes)
	case cfg.hasValue:
		return c.ConvertValue(cfg.value)
	case cfg.collection != nil:
		return c.Convert(cfg.collection)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("converter: no input source specified")
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		targetVersion:  openapi.DefaultVersion,
		folderSegments: true,
		operationIDs:   true,
		includeInfo:    true,
		maxDepth:       DefaultMaxDepth,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"converter: must specify an input source (use WithFilePath, WithReader, WithBytes, WithValue or WithCollection)",
		"converter: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.hasValue, cfg.collection != nil,
	); err != nil {
		return nil, &oaserrors.ConfigError{Option: "input", Message: err.Error()}
	}

	return cfg, nil
}

// WithFilePath specifies a collection file as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "WithReader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies JSON or YAML bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithValue specifies an already-decoded JSON value as the input source
func WithValue(v any) Option {
	return func(cfg *convertConfig) error {
		cfg.value = v
		cfg.hasValue = true
		return nil
	}
}

// WithCollection specifies a typed collection as the input source
func WithCollection(coll *postman.Collection) Option {
	return func(cfg *convertConfig) error {
		if coll == nil {
			return &oaserrors.ConfigError{Option: "WithCollection", Message: "collection cannot be nil"}
		}
		cfg.collection = coll
		return nil
	}
}

// WithTargetVersion sets the OpenAPI version written to the document.
// Only 3.0.x versions are accepted.
// Default: "3.0.0"
func WithTargetVersion(version string) Option {
	return func(cfg *convertConfig) error {
		if !targetVersionRe.MatchString(version) {
			return &oaserrors.ConfigError{
				Option:  "WithTargetVersion",
				Value:   version,
				Message: "only OpenAPI 3.0.x can be produced",
			}
		}
		cfg.targetVersion = version
		return nil
	}
}

// WithFolderSegments enables or disables prefixing paths with folder names
// Default: true
func WithFolderSegments(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.folderSegments = enabled
		return nil
	}
}

// WithOperationIDs enables or disables operationId generation
// Default: true
func WithOperationIDs(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.operationIDs = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages in the result
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithStrictMode makes conversion fail when any warning is reported
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithMaxDepth sets the maximum folder nesting depth.
// A value of 0 means use the default (64).
// Returns an error if depth is negative.
func WithMaxDepth(depth int) Option {
	return func(cfg *convertConfig) error {
		if depth < 0 {
			return &oaserrors.ConfigError{Option: "WithMaxDepth", Value: depth, Message: "cannot be negative"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithVariables sets values that override collection variables when the
// server URL is resolved. The map is copied.
func WithVariables(vars map[string]string) Option {
	return func(cfg *convertConfig) error {
		if cfg.variables == nil {
			cfg.variables = make(map[string]string, len(vars))
		}
		maps.Copy(cfg.variables, vars)
		return nil
	}
}

// WithLogger sets a structured logger for debug output during conversion.
// By default, no logging is performed.
func WithLogger(l Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}
