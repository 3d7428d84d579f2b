package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yankeeinlondon/schematic/catalog"
	"github.com/yankeeinlondon/schematic/validator"
)

func TestSetupValidateFlags(t *testing.T) {
	fs, flags := SetupValidateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.APIs)
		assert.False(t, flags.All)
		assert.False(t, flags.Strict)
		assert.False(t, flags.NoWarnings)
		assert.False(t, flags.Quiet)
		assert.Equal(t, FormatText, flags.Format)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-api", "elevenlabs", "-strict", "-q", "-format", "json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, apiList{"elevenlabs"}, flags.APIs)
		assert.True(t, flags.Strict)
		assert.True(t, flags.Quiet)
		assert.Equal(t, FormatJSON, flags.Format)
	})
}

func TestHandleValidate_Help(t *testing.T) {
	assert.NoError(t, HandleValidate([]string{"--help"}))
}

func TestHandleValidate_AllPasses(t *testing.T) {
	assert.NoError(t, HandleValidate([]string{"-all", "-q"}))
}

func TestHandleValidate_StructuredOutput(t *testing.T) {
	assert.NoError(t, HandleValidate([]string{"-all", "-format", "json"}))
	assert.NoError(t, HandleValidate([]string{"-api", "openai", "-format", "yaml"}))
}

func TestHandleValidate_InvalidFormat(t *testing.T) {
	err := HandleValidate([]string{"-all", "-format", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format 'xml'")
}

func TestHandleValidate_UnknownAPI(t *testing.T) {
	err := HandleValidate([]string{"-api", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown API")
}

func TestBuildValidateReport(t *testing.T) {
	defs := catalog.All()
	result := &validator.Result{
		Valid:        true,
		ErrorCount:   0,
		WarningCount: 1,
		Warnings: []validator.Issue{{
			Path:       "openai.docs_url",
			Message:    "docs URL missing",
			Field:      "DocsURL",
			Suggestion: "set a documentation URL",
		}},
		Duration: 5 * time.Millisecond,
	}

	report := buildValidateReport(result, defs, true, false)
	assert.True(t, report.Valid)
	assert.Equal(t, []string{"Anthropic", "ElevenLabs", "OpenAI"}, report.Definitions)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "openai.docs_url", report.Warnings[0].Path)
	assert.Equal(t, "set a documentation URL", report.Warnings[0].Suggestion)

	suppressed := buildValidateReport(result, defs, false, true)
	assert.False(t, suppressed.Valid)
	assert.Empty(t, suppressed.Warnings)
	assert.Equal(t, 1, suppressed.WarningCount)
}
