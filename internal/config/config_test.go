package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.Model)
	assert.Equal(t, "gemini-1.5-flash", cfg.AI.AdviceModel)
	assert.Equal(t, 60, cfg.AI.TimeoutSeconds)
	assert.Equal(t, ",", cfg.Export.CSVDelimiter)
	assert.Equal(t, "categories.yaml", cfg.Categories.File)
}

func TestInitializeConfigEnvOverrides(t *testing.T) {
	t.Setenv("SLIPSCAN_LOG_LEVEL", "debug")
	t.Setenv("SLIPSCAN_AI_MODEL", "gemini-1.5-pro")
	t.Setenv("SLIPSCAN_AI_TIMEOUT_SECONDS", "120")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "gemini-1.5-pro", cfg.AI.Model)
	assert.Equal(t, 120, cfg.AI.TimeoutSeconds)
}

func TestInitializeConfigGeminiKeyUnprefixed(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-value")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key-value", cfg.AI.APIKey)
}

func TestInitializeConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad log level", key: "SLIPSCAN_LOG_LEVEL", value: "shouting"},
		{name: "bad log format", key: "SLIPSCAN_LOG_FORMAT", value: "xml"},
		{name: "multi-char delimiter", key: "SLIPSCAN_EXPORT_CSV_DELIMITER", value: ",,"},
		{name: "timeout too small", key: "SLIPSCAN_AI_TIMEOUT_SECONDS", value: "0"},
		{name: "timeout too large", key: "SLIPSCAN_AI_TIMEOUT_SECONDS", value: "9000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Log.Level = "info"
		cfg.Log.Format = "text"
		cfg.AI.Model = "gemini-1.5-flash"
		cfg.AI.TimeoutSeconds = 60
		cfg.Export.CSVDelimiter = ";"
		return cfg
	}

	assert.NoError(t, validateConfig(valid()))

	cfg := valid()
	cfg.AI.Model = ""
	assert.Error(t, validateConfig(cfg))

	cfg = valid()
	cfg.Export.CSVDelimiter = ""
	assert.Error(t, validateConfig(cfg))
}
