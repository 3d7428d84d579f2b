package define

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamEndpoint() WebSocketEndpoint {
	return WebSocketEndpoint{
		ID:          "TextToSpeech",
		Path:        "/text-to-speech/{voice_id}/stream-input",
		Description: "Stream text and receive audio chunks",
		ConnectionParams: []ConnectionParam{
			{Name: "model_id", Type: ParamString, Required: true},
			{Name: "output_format", Type: ParamString},
		},
		Lifecycle: ConnectionLifecycle{
			Open:  &MessageSchema{Name: "BOS", Direction: DirectionClient, Schema: NewSchema("BeginOfStream")},
			Close: &MessageSchema{Name: "EOS", Direction: DirectionClient, Schema: NewSchema("EndOfStream")},
		},
		Messages: []MessageSchema{
			{Name: "TextChunk", Direction: DirectionClient, Schema: NewSchema("TextChunkMessage")},
			{Name: "AudioChunk", Direction: DirectionServer, Schema: NewSchema("AudioChunkResponse")},
			{Name: "Ping", Direction: DirectionBidirectional, Schema: NewSchema("PingMessage")},
		},
	}
}

func TestParseParamType(t *testing.T) {
	for s, want := range map[string]ParamType{
		"string":  ParamString,
		"integer": ParamInteger,
		"boolean": ParamBoolean,
		"float":   ParamFloat,
	} {
		got, err := ParseParamType(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	// case-sensitive
	_, err := ParseParamType("STRING")
	assert.Error(t, err)
	_, err = ParseParamType("int")
	assert.Error(t, err)
}

func TestMessageDirectionString(t *testing.T) {
	assert.Equal(t, "client", DirectionClient.String())
	assert.Equal(t, "server", DirectionServer.String())
	assert.Equal(t, "bidirectional", DirectionBidirectional.String())
}

func TestRequiredParams(t *testing.T) {
	ep := streamEndpoint()
	required := ep.RequiredParams()
	require.Len(t, required, 1)
	assert.Equal(t, "model_id", required[0].Name)
}

func TestMessagesByDirection(t *testing.T) {
	ep := streamEndpoint()

	client := ep.ClientMessages()
	require.Len(t, client, 2)
	assert.Equal(t, "TextChunk", client[0].Name)
	assert.Equal(t, "Ping", client[1].Name)

	server := ep.ServerMessages()
	require.Len(t, server, 2)
	assert.Equal(t, "AudioChunk", server[0].Name)
	assert.Equal(t, "Ping", server[1].Name)
}

func TestWebSocketAPINames(t *testing.T) {
	api := &WebSocketAPI{
		Name:              "ElevenLabsTTS",
		BaseURL:           "wss://api.elevenlabs.io/v1",
		Auth:              APIKeyAuth("xi-api-key"),
		CredentialEnvVars: []string{"ELEVEN_LABS_API_KEY"},
		Endpoints:         []WebSocketEndpoint{streamEndpoint()},
	}
	assert.Equal(t, "ElevenLabsTTSWebSocket", api.ClientName())
	assert.Equal(t, "elevenlabstts", api.EffectiveModulePath())
	assert.Equal(t, "BOS", api.Endpoints[0].Lifecycle.Open.Name)
}
