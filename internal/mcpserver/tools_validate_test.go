package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTool_WholeCatalog(t *testing.T) {
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, validateInput{})
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Empty(t, output.Errors)
	assert.Equal(t, []string{"Anthropic", "ElevenLabs", "OpenAI"}, output.Definitions)
}

func TestValidateTool_SingleDefinition(t *testing.T) {
	input := validateInput{APIs: []string{"openai"}}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.True(t, output.Valid)
	assert.Equal(t, []string{"OpenAI"}, output.Definitions)
}

func TestValidateTool_UnknownDefinition(t *testing.T) {
	input := validateInput{APIs: []string{"nope"}}
	result, _, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestValidateTool_NoWarnings(t *testing.T) {
	noWarnings := true
	input := validateInput{NoWarnings: &noWarnings}
	_, output, err := handleValidate(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Empty(t, output.Warnings)
	assert.Zero(t, output.WarningCount)
}
