package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvBool(t *testing.T) {
	t.Setenv("SCHEMATIC_TEST_BOOL", "")
	assert.True(t, envBool("SCHEMATIC_TEST_BOOL", true))

	t.Setenv("SCHEMATIC_TEST_BOOL", "false")
	assert.False(t, envBool("SCHEMATIC_TEST_BOOL", true))

	t.Setenv("SCHEMATIC_TEST_BOOL", "not-a-bool")
	assert.True(t, envBool("SCHEMATIC_TEST_BOOL", true))
}

func TestEnvString(t *testing.T) {
	t.Setenv("SCHEMATIC_TEST_STRING", "")
	assert.Equal(t, "schema", envString("SCHEMATIC_TEST_STRING", "schema"))

	t.Setenv("SCHEMATIC_TEST_STRING", "clients")
	assert.Equal(t, "clients", envString("SCHEMATIC_TEST_STRING", "schema"))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SCHEMATIC_OUTPUT_DIR", "")
	t.Setenv("SCHEMATIC_PACKAGE", "")
	t.Setenv("SCHEMATIC_DRY_RUN", "")
	t.Setenv("SCHEMATIC_VALIDATE_STRICT", "")
	t.Setenv("SCHEMATIC_VALIDATE_NO_WARNINGS", "")

	c := loadConfig()
	assert.Empty(t, c.OutputDir)
	assert.Equal(t, "schema", c.PackageName)
	assert.False(t, c.DryRun)
	assert.False(t, c.ValidateStrict)
	assert.False(t, c.ValidateNoWarnings)
}
