package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigDefaults garante os valores padrão do motor de recomendações
func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 1.5, cfg.Engine.CTRBenchmark)
	assert.Equal(t, 3.5, cfg.Engine.FrequencySaturation)
	assert.Equal(t, 1.2, cfg.Engine.CPATolerance)
	assert.Equal(t, 1.5, cfg.Engine.SegmentCPARatio)
	assert.Equal(t, 7, cfg.Engine.GrowthWindowDays)
	assert.Equal(t, 125, cfg.Engine.LongTextWordLimit)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.NotEmpty(t, cfg.App.LogLevel)
}

// TestNewConfigEnvOverride garante que variáveis de ambiente sobrepõem os
// valores padrão
func TestNewConfigEnvOverride(t *testing.T) {
	t.Setenv("ENGINE_CTR_BENCHMARK", "2.5")
	t.Setenv("PORT", "9000")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.Engine.CTRBenchmark)
	assert.Equal(t, "9000", cfg.Server.Port)
}
