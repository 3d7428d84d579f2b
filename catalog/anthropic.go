package catalog

import "github.com/yankeeinlondon/schematic/define"

// Anthropic returns the Anthropic Messages API definition: message creation,
// token counting, and model discovery. Every request carries the required
// anthropic-version header.
func Anthropic() *define.API {
	return &define.API{
		Name:              "Anthropic",
		Description:       "Anthropic Messages API for Claude AI interactions and agent tool use",
		BaseURL:           "https://api.anthropic.com/v1",
		DocsURL:           "https://docs.anthropic.com/en/api/messages",
		Auth:              define.APIKeyAuth("X-Api-Key"),
		CredentialEnvVars: []string{"ANTHROPIC_API_KEY"},
		Headers: []define.Header{
			{Name: "anthropic-version", Value: "2023-06-01"},
		},
		Endpoints: []define.Endpoint{
			{
				ID:          "CreateMessage",
				Method:      define.MethodPost,
				Path:        "/messages",
				Description: "Create a message with optional tool use for agent interactions",
				Request:     define.JSONBodyType("CreateMessageBody"),
				Response:    define.JSONResponseType("MessageResponse"),
			},
			{
				ID:          "CountTokens",
				Method:      define.MethodPost,
				Path:        "/messages/count_tokens",
				Description: "Count tokens in a message before sending",
				Request:     define.JSONBodyType("CountTokensBody"),
				Response:    define.JSONResponseType("CountTokensResponse"),
			},
			{
				ID:          "ListClaudeModels",
				Method:      define.MethodGet,
				Path:        "/models",
				Description: "List available Claude models",
				Response:    define.JSONResponseType("ClaudeModelList"),
			},
			{
				ID:          "GetModel",
				Method:      define.MethodGet,
				Path:        "/models/{model_id}",
				Description: "Get information about a specific model",
				Response:    define.JSONResponseType("ModelInfo"),
			},
		},
	}
}
