package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/yankeeinlondon/schematic/catalog"
)

type catalogInput struct{}

type catalogEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	BaseURL     string   `json:"base_url"`
	DocsURL     string   `json:"docs_url,omitempty"`
	Auth        string   `json:"auth"`
	EnvVars     []string `json:"env_vars,omitempty"`
	Endpoints   int      `json:"endpoints"`
}

type catalogOutput struct {
	Definitions []catalogEntry `json:"definitions"`
}

func handleCatalog(_ context.Context, _ *mcp.CallToolRequest, _ catalogInput) (*mcp.CallToolResult, catalogOutput, error) {
	defs := catalog.All()
	output := catalogOutput{Definitions: makeSlice[catalogEntry](len(defs))}
	for _, def := range defs {
		output.Definitions = append(output.Definitions, catalogEntry{
			Name:        def.Name,
			Description: def.Description,
			BaseURL:     def.BaseURL,
			DocsURL:     def.DocsURL,
			Auth:        def.Auth.Kind.String(),
			EnvVars:     def.CredentialEnvVars,
			Endpoints:   len(def.Endpoints),
		})
	}
	return nil, output, nil
}
