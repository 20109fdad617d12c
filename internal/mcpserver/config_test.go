package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv clears all POSTMAN2OAS_* env vars to isolate tests from the ambient environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"POSTMAN2OAS_FORMAT", "POSTMAN2OAS_MAX_DEPTH",
		"POSTMAN2OAS_FETCH_ATTEMPTS", "POSTMAN2OAS_FETCH_TIMEOUT",
		"POSTMAN2OAS_ALLOW_PRIVATE_IPS", "POSTMAN2OAS_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	c := loadConfig()

	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, 64, c.MaxDepth)
	assert.Equal(t, 3, c.FetchAttempts)
	assert.Equal(t, 30*time.Second, c.FetchTimeout)
	assert.False(t, c.AllowPrivateIPs)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTMAN2OAS_FORMAT", "JSON")
	t.Setenv("POSTMAN2OAS_MAX_DEPTH", "8")
	t.Setenv("POSTMAN2OAS_FETCH_ATTEMPTS", "5")
	t.Setenv("POSTMAN2OAS_FETCH_TIMEOUT", "2s")
	t.Setenv("POSTMAN2OAS_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("POSTMAN2OAS_MAX_INLINE_SIZE", "1024")

	c := loadConfig()

	assert.Equal(t, "json", c.Format)
	assert.Equal(t, 8, c.MaxDepth)
	assert.Equal(t, 5, c.FetchAttempts)
	assert.Equal(t, 2*time.Second, c.FetchTimeout)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, int64(1024), c.MaxInlineSize)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("POSTMAN2OAS_FORMAT", "xml")
	t.Setenv("POSTMAN2OAS_MAX_DEPTH", "-1")
	t.Setenv("POSTMAN2OAS_FETCH_ATTEMPTS", "many")
	t.Setenv("POSTMAN2OAS_FETCH_TIMEOUT", "soon")
	t.Setenv("POSTMAN2OAS_ALLOW_PRIVATE_IPS", "perhaps")

	c := loadConfig()

	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, 64, c.MaxDepth)
	assert.Equal(t, 3, c.FetchAttempts)
	assert.Equal(t, 30*time.Second, c.FetchTimeout)
	assert.False(t, c.AllowPrivateIPs)
}
