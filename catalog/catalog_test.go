package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yankeeinlondon/schematic/define"
	"github.com/yankeeinlondon/schematic/validator"
)

func TestAllDefinitionsValidate(t *testing.T) {
	result := validator.ValidateAll(All()...)
	assert.True(t, result.Valid, "catalog definitions must validate cleanly: %v", result.Errors)
	assert.Zero(t, result.ErrorCount)
}

func TestNamesAndLookup(t *testing.T) {
	assert.Equal(t, []string{"anthropic", "elevenlabs", "openai"}, Names())

	def, ok := Lookup("OpenAI")
	require.True(t, ok)
	assert.Equal(t, "OpenAI", def.Name)

	_, ok = Lookup("unknown")
	assert.False(t, ok)
}

func TestLookupReturnsFreshCopies(t *testing.T) {
	a, _ := Lookup("openai")
	a.ModulePath = "changed"
	a.Endpoints = a.Endpoints[:1]

	b, _ := Lookup("openai")
	assert.Empty(t, b.ModulePath)
	assert.Len(t, b.Endpoints, 3)
}

func TestOpenAIDefinition(t *testing.T) {
	def := OpenAI()
	assert.Equal(t, "https://api.openai.com/v1", def.BaseURL)
	assert.Equal(t, define.AuthBearer, def.Auth.Kind)
	assert.Equal(t, []string{"OPENAI_API_KEY"}, def.CredentialEnvVars)
	assert.Len(t, def.Endpoints, 3)
}

func TestAnthropicDefinition(t *testing.T) {
	def := Anthropic()
	assert.Equal(t, define.AuthAPIKey, def.Auth.Kind)
	assert.Equal(t, "X-Api-Key", def.Auth.HeaderName())
	require.Len(t, def.Headers, 1)
	assert.Equal(t, "anthropic-version", def.Headers[0].Name)
	assert.Equal(t, "2023-06-01", def.Headers[0].Value)

	create := def.Endpoints[0]
	assert.Equal(t, "CreateMessage", create.ID)
	assert.Equal(t, define.MethodPost, create.Method)
	require.NotNil(t, create.Request)
	assert.True(t, create.Request.IsJSON())
}

func TestElevenLabsDefinition(t *testing.T) {
	def := ElevenLabs()
	assert.Equal(t, "xi-api-key", def.Auth.HeaderName())
	assert.Equal(t, []string{"ELEVEN_LABS_API_KEY", "ELEVENLABS_API_KEY"}, def.CredentialEnvVars)
	assert.GreaterOrEqual(t, len(def.Endpoints), 35)

	byID := make(map[string]define.Endpoint, len(def.Endpoints))
	for _, ep := range def.Endpoints {
		byID[ep.ID] = ep
	}

	speech, ok := byID["CreateSpeech"]
	require.True(t, ok)
	assert.Equal(t, "/v1/text-to-speech/{voice_id}", speech.Path)
	assert.True(t, speech.Response.IsBinary())

	sample, ok := byID["AddVoiceSample"]
	require.True(t, ok)
	require.NotNil(t, sample.Request)
	assert.Equal(t, define.RequestFormData, sample.Request.Kind)
	assert.Equal(t, define.FieldFile, sample.Request.Fields[0].Kind)
	assert.True(t, sample.Request.Fields[0].Required)
	assert.False(t, sample.Request.Fields[1].Required)
}

func TestElevenLabsWebSocketDefinition(t *testing.T) {
	def := ElevenLabsTTS()
	assert.Equal(t, "ElevenLabsTTS", def.Name)
	assert.Equal(t, "wss://api.elevenlabs.io", def.BaseURL)
	require.Len(t, def.Endpoints, 2)

	tts := def.Endpoints[0]
	assert.Equal(t, "TextToSpeech", tts.ID)
	assert.Len(t, tts.ConnectionParams, 10)
	assert.Empty(t, tts.RequiredParams())
	require.NotNil(t, tts.Lifecycle.Open)
	assert.Equal(t, "BOS", tts.Lifecycle.Open.Name)
	assert.Nil(t, tts.Lifecycle.Keepalive)
	assert.Len(t, tts.ServerMessages(), 1)
	assert.Len(t, tts.ClientMessages(), 1)
}

func TestCatalogGeneratedNamesAreDistinct(t *testing.T) {
	// every definition's wrappers land in one output package, so the
	// generated top-level names must be unique across the whole catalog
	owners := make(map[string]string)
	for _, def := range All() {
		claim := func(name string) {
			owner, taken := owners[name]
			assert.False(t, taken, "%s and %s both generate %q", owner, def.Name, name)
			owners[name] = def.Name
		}
		claim(def.ClientName())
		claim(def.UnionName())
		for _, ep := range def.Endpoints {
			claim(def.WrapperName(ep))
		}
	}
}
