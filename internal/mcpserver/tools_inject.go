package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yankeeinlondon/schematic/codemod"
	"github.com/yankeeinlondon/schematic/generator"
)

type enumValueInput struct {
	Ident string `json:"ident" jsonschema:"Exported Go constant identifier (e.g. VoiceAlloy)"`
	Value string `json:"value" jsonschema:"Wire value the constant carries (e.g. alloy)"`
}

type injectEnumInput struct {
	File    string           `json:"file"              jsonschema:"Path to the Go file to mutate (created if missing)"`
	Name    string           `json:"name"              jsonschema:"Name of the enum type to inject or replace"`
	Doc     string           `json:"doc,omitempty"     jsonschema:"Doc comment text for the type"`
	Values  []enumValueInput `json:"values"            jsonschema:"Enum members in declaration order"`
	Package string           `json:"package,omitempty" jsonschema:"Package name when creating a new file (default: schema)"`
	DryRun  bool             `json:"dry_run,omitempty" jsonschema:"Validate the splice without writing"`
}

type injectEnumOutput struct {
	File   string `json:"file"`
	Name   string `json:"name"`
	Values int    `json:"values"`
	DryRun bool   `json:"dry_run"`
}

func handleInjectEnum(_ context.Context, _ *mcp.CallToolRequest, input injectEnumInput) (*mcp.CallToolResult, injectEnumOutput, error) {
	if input.File == "" {
		return errResult(fmt.Errorf("file is required")), injectEnumOutput{}, nil
	}

	values := make([]generator.EnumValue, 0, len(input.Values))
	for _, v := range input.Values {
		values = append(values, generator.EnumValue{Ident: v.Ident, Value: v.Value})
	}

	var opts []codemod.Option
	if input.Package != "" {
		opts = append(opts, codemod.WithPackageName(input.Package))
	}
	if input.DryRun {
		opts = append(opts, codemod.WithDryRun())
	}

	if err := generator.InjectEnum(input.File, input.Name, input.Doc, values, opts...); err != nil {
		return errResult(err), injectEnumOutput{}, nil
	}

	return nil, injectEnumOutput{
		File:   input.File,
		Name:   input.Name,
		Values: len(values),
		DryRun: input.DryRun,
	}, nil
}
