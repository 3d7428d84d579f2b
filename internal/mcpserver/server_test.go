package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	err := errors.New("open /tmp/secret/output.go: permission denied")
	assert.Equal(t, "open <path>: permission denied", sanitizeError(err))
	assert.Empty(t, sanitizeError(nil))
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[int](0))
	s := makeSlice[int](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

func TestCatalogTool(t *testing.T) {
	_, output, err := handleCatalog(context.Background(), &mcp.CallToolRequest{}, catalogInput{})
	require.NoError(t, err)
	require.Len(t, output.Definitions, 3)
	assert.Equal(t, "Anthropic", output.Definitions[0].Name)
	assert.Equal(t, "apikey", output.Definitions[0].Auth)
	assert.Equal(t, 4, output.Definitions[0].Endpoints)
}
