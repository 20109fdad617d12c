// Package severity provides the severity levels attached to conversion issues.
//
// The levels are ordered from least to most severe: Info < Warning.
// Conversion never reports errors through issues; hard failures are returned
// as errors from the oaserrors package instead.
package severity

// Severity indicates how much a conversion choice affected the output.
type Severity int

const (
	// SeverityInfo marks a processing choice that did not lose information,
	// such as skipping an empty folder or defaulting a missing method.
	SeverityInfo Severity = iota

	// SeverityWarning marks a best-effort or lossy mapping, e.g. an unknown
	// auth type or an HTTP method OpenAPI 3.0 cannot represent.
	SeverityWarning
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}
