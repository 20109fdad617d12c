// Package issues provides the issue type reported by a conversion.
package issues

import (
	"fmt"

	"github.com/erraggy/postman2oas/internal/severity"
)

// Issue represents a single local degradation found while converting a
// collection. Issues never abort a conversion.
type Issue struct {
	// Path locates the source element in the collection (e.g., "item[0].item[2].request.url")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Context provides additional information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses "⚠" for warnings and "ℹ" for informational issues.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}
