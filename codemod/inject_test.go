package codemod

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yankeeinlondon/schematic/schemerrors"
)

const modelsSource = `package models

// Color is a paint color.
type Color string

const (
	Red  Color = "red"
	Blue Color = "blue"
)

// ModelID identifies a model.
type ModelID string

const (
	GPT4 ModelID = "gpt-4"
)

// Unrelated stays put.
func Unrelated() {}
`

const modelIDFragment = `// ModelID identifies a model.
type ModelID string

const (
	GPT4  ModelID = "gpt-4"
	GPT4o ModelID = "gpt-4o"
)
`

func TestInjectEnumReplacesOnlyNamedEnum(t *testing.T) {
	path := writeTarget(t, modelsSource)

	require.NoError(t, InjectEnum(path, "ModelID", modelIDFragment))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	// the new enum is present exactly once
	assert.Contains(t, content, `GPT4o ModelID = "gpt-4o"`)
	assert.Equal(t, 1, countOccurrences(content, "type ModelID string"))

	// everything else survives byte-for-byte
	assert.Contains(t, content, "type Color string")
	assert.Contains(t, content, `Red  Color = "red"`)
	assert.Contains(t, content, "func Unrelated() {}")
}

func TestInjectEnumIsIdempotent(t *testing.T) {
	path := writeTarget(t, modelsSource)

	require.NoError(t, InjectEnum(path, "ModelID", modelIDFragment))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, InjectEnum(path, "ModelID", modelIDFragment))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestInjectEnumAppendsWhenAbsent(t *testing.T) {
	path := writeTarget(t, "package models\n\ntype Color string\n")

	require.NoError(t, InjectEnum(path, "ModelID", modelIDFragment))

	data, _ := os.ReadFile(path)
	assert.Contains(t, string(data), "type ModelID string")
	assert.Contains(t, string(data), "type Color string")
}

func TestInjectEnumCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "models.go")

	require.NoError(t, InjectEnum(path, "ModelID", modelIDFragment, WithPackageName("clients")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package clients\n")
	assert.Contains(t, string(data), "type ModelID string")
}

func TestInjectEnumRejectsFragmentWithoutType(t *testing.T) {
	path := writeTarget(t, modelsSource)

	err := InjectEnum(path, "ModelID", "const Loose = 1\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemerrors.ErrConfig))

	data, _ := os.ReadFile(path)
	assert.Equal(t, modelsSource, string(data))
}

func TestInjectEnumRejectsInvalidFragment(t *testing.T) {
	path := writeTarget(t, modelsSource)

	err := InjectEnum(path, "ModelID", "type ModelID string {{{\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemerrors.ErrSyntax))

	// nothing touched, nothing left behind
	data, _ := os.ReadFile(path)
	assert.Equal(t, modelsSource, string(data))
	assertNoTempResidue(t, path)
}

func TestInjectEnumRejectsMalformedTarget(t *testing.T) {
	path := writeTarget(t, "package models\n\nbroken {{{\n")

	err := InjectEnum(path, "ModelID", modelIDFragment)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schemerrors.ErrSyntax))
}

func TestInjectEnumDryRun(t *testing.T) {
	path := writeTarget(t, modelsSource)

	require.NoError(t, InjectEnum(path, "ModelID", modelIDFragment, WithDryRun()))

	data, _ := os.ReadFile(path)
	assert.Equal(t, modelsSource, string(data))
}

func countOccurrences(s, sub string) int {
	return strings.Count(s, sub)
}
