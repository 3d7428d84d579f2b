// Package severity provides severity level constants and utilities
// for issues reported by the validator and generator packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue found during
// definition validation or code generation.
type Severity int

const (
	// SeverityError indicates a definition violation that prevents generation.
	SeverityError Severity = iota

	// SeverityWarning indicates best-practice violations or recommendations
	// that don't prevent generation but should be addressed.
	SeverityWarning

	// SeverityInfo indicates informational messages about processing choices.
	SeverityInfo

	// SeverityCritical indicates conditions that cannot be processed at all,
	// such as conflicting output modules across definitions.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
