// This file implements name conversion from definition identifiers to valid
// Go identifiers, including reserved word escaping, PascalCase/camelCase
// conversion, and description formatting.

package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxDescriptionLength is the maximum length for descriptions in Go comments
// before truncation. This keeps generated code readable and prevents
// excessively long comment lines.
const maxDescriptionLength = 200

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Note: We only include actual keywords, not predeclared identifiers like "error",
// because those can be shadowed and are commonly used as type names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// escapeReservedWord checks if a name is a Go reserved keyword and escapes it
// by appending an underscore if necessary. The check is case-insensitive
// because PascalCase names like "Range" or "Type" should still be escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// toTypeName converts a definition identifier to a valid Go type name
// (PascalCase). It handles separators and special characters, ensures the
// name starts with a letter, and escapes Go reserved words.
func toTypeName(s string) string {
	if s == "" {
		return "Type"
	}

	var words []string
	var current strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	var result strings.Builder
	for _, w := range words {
		result.WriteString(titleCaser.String(w))
	}

	name := result.String()
	if len(name) > 0 && !unicode.IsLetter(rune(name[0])) {
		name = "T" + name
	}
	return escapeReservedWord(name)
}

// toFieldName converts a wire name (path parameter, form field) to a valid
// Go struct field name (PascalCase).
func toFieldName(s string) string {
	return toTypeName(s)
}

// toParamName converts a wire name to a valid Go parameter name (camelCase).
func toParamName(s string) string {
	name := toTypeName(s)
	if len(name) > 0 {
		name = strings.ToLower(name[:1]) + name[1:]
	} else {
		name = "param"
	}
	return escapeReservedWord(name)
}

// cleanDescription prepares a definition description for use in Go comments.
// It removes newlines, trims whitespace, and truncates long descriptions.
func cleanDescription(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len(s) > maxDescriptionLength {
		runes := []rune(s)
		if len(runes) > maxDescriptionLength-3 {
			s = string(runes[:maxDescriptionLength-3]) + "..."
		}
	}
	return s
}
