package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yankeeinlondon/schematic/catalog"
	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/validator"
)

type validateInput struct {
	APIs       []string `json:"apis,omitempty"        jsonschema:"Catalog identifiers to validate (default: all)"`
	Strict     *bool    `json:"strict,omitempty"      jsonschema:"Treat warnings as failures"`
	NoWarnings *bool    `json:"no_warnings,omitempty" jsonschema:"Suppress warnings from output"`
}

type validateIssue struct {
	Path       string `json:"path"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

type validateOutput struct {
	Valid        bool            `json:"valid"`
	Definitions  []string        `json:"definitions"`
	ErrorCount   int             `json:"error_count"`
	WarningCount int             `json:"warning_count"`
	Errors       []validateIssue `json:"errors,omitempty"`
	Warnings     []validateIssue `json:"warnings,omitempty"`
}

// resolveDefinitions maps catalog identifiers to fresh definitions.
// An empty list selects the whole catalog.
func resolveDefinitions(names []string) ([]*define.API, error) {
	if len(names) == 0 {
		return catalog.All(), nil
	}
	defs := make([]*define.API, 0, len(names))
	for _, name := range names {
		def, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown definition %q; available: %s",
				name, strings.Join(catalog.Names(), ", "))
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.ValidateStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	noWarnings := cfg.ValidateNoWarnings
	if input.NoWarnings != nil {
		noWarnings = *input.NoWarnings
	}

	defs, err := resolveDefinitions(input.APIs)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result := validator.ValidateAll(defs...)

	output := validateOutput{
		Valid:      result.Valid,
		ErrorCount: result.ErrorCount,
	}
	for _, def := range defs {
		output.Definitions = append(output.Definitions, def.Name)
	}
	if strict && result.WarningCount > 0 {
		output.Valid = false
	}

	output.Errors = makeSlice[validateIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, validateIssue{
			Path:       e.Path,
			Message:    e.Message,
			Field:      e.Field,
			Suggestion: e.Suggestion,
		})
	}
	if !noWarnings {
		output.WarningCount = result.WarningCount
		output.Warnings = makeSlice[validateIssue](len(result.Warnings))
		for _, w := range result.Warnings {
			output.Warnings = append(output.Warnings, validateIssue{
				Path:       w.Path,
				Message:    w.Message,
				Field:      w.Field,
				Suggestion: w.Suggestion,
			})
		}
	}

	return nil, output, nil
}
