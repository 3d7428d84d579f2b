// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes schematic capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	schematic "github.com/yankeeinlondon/schematic"
)

const serverInstructions = `schematic MCP server — validates API definitions, generates typed Go clients, and injects enum declarations into generated source.

Configuration: All defaults are configurable via SCHEMATIC_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SCHEMATIC_OUTPUT_DIR — default output directory for generate
- SCHEMATIC_PACKAGE (default: schema) — default Go package name for generated code
- SCHEMATIC_DRY_RUN (default: false) — validate and synthesize without writing files
- SCHEMATIC_VALIDATE_STRICT (default: false) — treat warnings as failures by default
- SCHEMATIC_VALIDATE_NO_WARNINGS (default: false) — suppress warnings by default

Definitions come from the built-in catalog; use the catalog tool to list them.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "schematic", Version: schematic.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog",
		Description: "List the built-in API definitions available for validation and generation. Returns each definition's identifier, base URL, auth strategy, credential chain, and endpoint count.",
	}, handleCatalog)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate API definitions from the catalog. All checks run and all issues are reported; nothing stops at the first problem. Use no_warnings to focus on errors. Strict mode and warning suppression defaults are configurable via SCHEMATIC_VALIDATE_STRICT and SCHEMATIC_VALIDATE_NO_WARNINGS env vars.",
	}, handleValidate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate strongly-typed Go client source from catalog API definitions. Validates first; on success writes a package (doc.go, shared.go, one file per module, README.md) into output_dir through an atomic, parse-checked commit. Use dry_run=true to run every stage including per-file validation without writing. Defaults are configurable via SCHEMATIC_OUTPUT_DIR, SCHEMATIC_PACKAGE, and SCHEMATIC_DRY_RUN env vars.",
	}, handleGenerate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inject_enum",
		Description: "Inject or replace a typed string enum (type declaration plus const block) in a Go source file. The file is parsed before and after the splice and committed atomically; other declarations are preserved byte-for-byte. Creates the file with a package clause when missing.",
	}, handleInjectEnum)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
