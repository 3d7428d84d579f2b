package catalog

import "github.com/yankeeinlondon/schematic/define"

// OpenAI returns the OpenAI Models API definition: listing, retrieving, and
// deleting models.
func OpenAI() *define.API {
	return &define.API{
		Name:              "OpenAI",
		Description:       "OpenAI REST API for model management",
		BaseURL:           "https://api.openai.com/v1",
		DocsURL:           "https://platform.openai.com/docs/api-reference",
		Auth:              define.BearerAuth(),
		CredentialEnvVars: []string{"OPENAI_API_KEY"},
		Endpoints: []define.Endpoint{
			{
				ID:          "ListModels",
				Method:      define.MethodGet,
				Path:        "/models",
				Description: "Lists the currently available models",
				Response:    define.JSONResponseType("ListModelsResponse"),
			},
			{
				ID:          "RetrieveModel",
				Method:      define.MethodGet,
				Path:        "/models/{model}",
				Description: "Retrieves a model instance",
				Response:    define.JSONResponseType("Model"),
			},
			{
				ID:          "DeleteModel",
				Method:      define.MethodDelete,
				Path:        "/models/{model}",
				Description: "Delete a fine-tuned model",
				Response:    define.JSONResponseType("DeleteModelResponse"),
			},
		},
	}
}
