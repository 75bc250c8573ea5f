package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.Equal(t, "GPL (>= 3)", cfg.License)
	assert.NotEmpty(t, cfg.Author)
	assert.False(t, cfg.AutoConfig)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)

	assert.NoError(t, Validate(cfg), "default config must pass validation")
}
