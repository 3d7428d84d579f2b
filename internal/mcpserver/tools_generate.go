package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yankeeinlondon/schematic/generator"
)

type generateInput struct {
	APIs       []string `json:"apis,omitempty"        jsonschema:"Catalog identifiers to generate clients for (default: all)"`
	OutputDir  string   `json:"output_dir,omitempty"  jsonschema:"Directory to write the generated package into (default: SCHEMATIC_OUTPUT_DIR)"`
	Package    string   `json:"package,omitempty"     jsonschema:"Go package name for generated code (default: SCHEMATIC_PACKAGE or schema)"`
	DryRun     *bool    `json:"dry_run,omitempty"     jsonschema:"Run every stage including per-file validation but skip the final writes"`
	SkipReadme bool     `json:"skip_readme,omitempty" jsonschema:"Skip README.md generation"`
}

type generatedFileInfo struct {
	Name  string `json:"name"`
	Bytes int    `json:"bytes"`
}

type generateOutput struct {
	Success      bool                `json:"success"`
	DryRun       bool                `json:"dry_run"`
	PackageName  string              `json:"package_name"`
	OutputDir    string              `json:"output_dir"`
	Clients      int                 `json:"clients"`
	Wrappers     int                 `json:"wrappers"`
	Files        []generatedFileInfo `json:"files"`
	ErrorCount   int                 `json:"error_count"`
	WarningCount int                 `json:"warning_count"`
	Issues       []validateIssue     `json:"issues,omitempty"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	outputDir := input.OutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if outputDir == "" {
		return errResult(fmt.Errorf("output_dir is required (or set SCHEMATIC_OUTPUT_DIR)")), generateOutput{}, nil
	}
	packageName := input.Package
	if packageName == "" {
		packageName = cfg.PackageName
	}
	dryRun := cfg.DryRun
	if input.DryRun != nil {
		dryRun = *input.DryRun
	}

	defs, err := resolveDefinitions(input.APIs)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	result, err := generator.GenerateWithOptions(
		generator.WithDefinitions(defs...),
		generator.WithPackageName(packageName),
		generator.WithOutputDir(outputDir),
		generator.WithDryRun(dryRun),
		generator.WithReadme(!input.SkipReadme),
	)
	if err != nil {
		return errResult(err), buildGenerateOutput(result, outputDir), nil
	}

	if err := result.WriteFiles(outputDir); err != nil {
		return errResult(err), buildGenerateOutput(result, outputDir), nil
	}

	return nil, buildGenerateOutput(result, outputDir), nil
}

func buildGenerateOutput(result *generator.GenerateResult, outputDir string) generateOutput {
	if result == nil {
		return generateOutput{OutputDir: outputDir}
	}
	output := generateOutput{
		Success:      result.Success,
		DryRun:       result.DryRun,
		PackageName:  result.PackageName,
		OutputDir:    outputDir,
		Clients:      result.GeneratedClients,
		Wrappers:     result.GeneratedWrappers,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
	}
	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{Name: f.Name, Bytes: len(f.Content)})
	}
	output.Issues = makeSlice[validateIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, validateIssue{
			Path:       issue.Path,
			Message:    issue.Message,
			Field:      issue.Field,
			Suggestion: issue.Suggestion,
		})
	}
	return output
}
