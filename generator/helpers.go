package generator

import (
	"golang.org/x/tools/imports"
)

// formatAndFixImports formats Go source and resolves its import block using
// goimports-equivalent processing. This ensures generated code is
// immediately compilable without requiring users to run goimports.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
