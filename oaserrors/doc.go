// Package oaserrors provides structured error types for postman2oas.
//
// Import path: github.com/erraggy/postman2oas/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a malformed collection apart from an unreadable
// file or a bad option.
//
// # Error Types
//
//   - [InvalidInputError]: the collection value has the wrong shape (not an object,
//     or an "item" field that is not a sequence)
//   - [ParseError]: input bytes could not be decoded as JSON or YAML
//   - [ResourceLimitError]: resource exhaustion (folder nesting depth, input size)
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrInvalidInput]: Matches any [InvalidInputError]
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Example
//
//	result, err := converter.ConvertWithOptions(converter.WithFilePath("collection.json"))
//	if err != nil {
//	    var shapeErr *oaserrors.InvalidInputError
//	    if errors.As(err, &shapeErr) {
//	        fmt.Printf("bad collection at %s: %s\n", shapeErr.Path, shapeErr.Message)
//	    }
//	}
package oaserrors
