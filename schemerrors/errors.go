// Package schemerrors provides structured error types for schematic.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - ValidationError: definition violations found before generation
//   - NamingCollisionError: request body type colliding with a wrapper name
//   - InvalidRequestSuffixError: malformed request-suffix configuration
//   - SyntaxError: generated or mutated source that fails to parse
//   - WriteError: filesystem failures while committing output
//   - ConfigError: invalid options or conflicting definition configuration
//
// # Usage with errors.As
//
//	err := generator.Generate(def, outDir)
//	if err != nil {
//	    var collision *schemerrors.NamingCollisionError
//	    if errors.As(err, &collision) {
//	        fmt.Println("rename the body type to", collision.Suggestion)
//	    }
//	}
package schemerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrValidation indicates a definition validation failure.
	ErrValidation = errors.New("validation error")

	// ErrNamingCollision indicates a request body type that collides with
	// the name synthesized for an endpoint's request wrapper.
	ErrNamingCollision = errors.New("naming collision")

	// ErrInvalidRequestSuffix indicates a malformed request-suffix setting.
	ErrInvalidRequestSuffix = errors.New("invalid request suffix")

	// ErrSyntax indicates source content that fails to parse as Go.
	ErrSyntax = errors.New("syntax error")

	// ErrWrite indicates a filesystem failure while committing output.
	ErrWrite = errors.New("write error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrParse indicates input that could not be parsed into a usable value.
	ErrParse = errors.New("parse error")

	// ErrOutputDirNotFound indicates the requested output directory does
	// not exist and creation was not permitted.
	ErrOutputDirNotFound = errors.New("output directory not found")
)

// ValidationError represents one or more definition violations.
// Issues carries the full formatted report so callers can present
// everything found in a single pass.
type ValidationError struct {
	// Definition is the name of the definition that failed validation
	Definition string
	// Message summarizes the failure
	Message string
	// Issues holds the formatted report lines, one per problem found
	Issues []string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Definition != "" {
		msg += " in " + e.Definition
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if n := len(e.Issues); n > 0 {
		msg += fmt.Sprintf(" (%d issue(s))", n)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NamingCollisionError reports that an endpoint's JSON body type has the
// same name as the request wrapper that would be generated for it, which
// would produce two identically named types in the output module.
type NamingCollisionError struct {
	// EndpointID is the identifier of the offending endpoint
	EndpointID string
	// TypeName is the colliding body type name
	TypeName string
	// Suggestion is a rename that avoids the collision
	Suggestion string
}

// Error returns a human-readable error message.
func (e *NamingCollisionError) Error() string {
	msg := "naming collision"
	if e.EndpointID != "" {
		msg += " for endpoint " + e.EndpointID
	}
	if e.TypeName != "" {
		msg += fmt.Sprintf(": body type %q matches the generated wrapper name", e.TypeName)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; consider renaming it to %q", e.Suggestion)
	}
	return msg
}

// Unwrap returns nil as NamingCollisionError has no underlying cause.
func (e *NamingCollisionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches both ErrNamingCollision and ErrValidation since a collision
// is discovered during validation.
func (e *NamingCollisionError) Is(target error) bool {
	return target == ErrNamingCollision || target == ErrValidation
}

// InvalidRequestSuffixError reports a request-suffix setting that cannot
// produce valid Go type names.
type InvalidRequestSuffixError struct {
	// Suffix is the rejected value
	Suffix string
	// Reason describes why the suffix was rejected
	Reason string
}

// Error returns a human-readable error message.
func (e *InvalidRequestSuffixError) Error() string {
	msg := fmt.Sprintf("invalid request suffix %q", e.Suffix)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns nil as InvalidRequestSuffixError has no underlying cause.
func (e *InvalidRequestSuffixError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches both ErrInvalidRequestSuffix and ErrValidation since the suffix
// is checked during validation.
func (e *InvalidRequestSuffixError) Is(target error) bool {
	return target == ErrInvalidRequestSuffix || target == ErrValidation
}

// SyntaxError represents Go source that fails to parse. It is reported
// both for malformed mutation targets (pre-check) and for computed content
// that would corrupt a file if written (post-check).
type SyntaxError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where parsing failed (0 if unknown)
	Line int
	// Column is the column number where parsing failed (0 if unknown)
	Column int
	// Message describes the parse failure
	Message string
	// Stage is "precheck" when the existing file was malformed,
	// "postcheck" when the computed replacement was malformed
	Stage string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SyntaxError) Error() string {
	msg := "syntax error"
	if e.Stage != "" {
		msg += " (" + e.Stage + ")"
	}
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// WriteError represents a filesystem failure while committing output.
// The target file is guaranteed untouched when a WriteError is returned.
type WriteError struct {
	// Path is the intended destination file
	Path string
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *WriteError) Error() string {
	msg := "write error"
	if e.Path != "" {
		msg += " for " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// ConfigError represents an invalid configuration or conflicting input.
// This includes invalid options, missing required inputs, and definitions
// that claim the same output module without agreeing on it explicitly.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// ParseError represents input that could not be parsed into a usable value,
// such as a malformed enum value pair or an unrecognized method name.
type ParseError struct {
	// Input is the text that failed to parse
	Input string
	// Message describes what was expected
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Input != "" {
		msg += fmt.Sprintf(" for %q", e.Input)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
