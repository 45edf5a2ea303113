package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDomainConfig(t *testing.T) {
	cfg := DefaultDomainConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.0, cfg.MinMetricLevel)
	assert.Equal(t, 100.0, cfg.MaxMetricLevel)
	assert.Equal(t, 10.0, cfg.MaxFeelingLevel)
	assert.Equal(t, -1.0, cfg.MinDimension)
	assert.Equal(t, 1.0, cfg.MaxDimension)
	assert.Equal(t, 5.0, cfg.SignificantEvolutionDelta)
	assert.Equal(t, 10000, cfg.MaxNarrativeLength)
	assert.Equal(t, 20, cfg.MaxEmotionalNeeds)
}

func TestDomainConfig_Validate(t *testing.T) {
	t.Run("inverted metric bounds fail", func(t *testing.T) {
		cfg := DefaultDomainConfig()
		cfg.MinMetricLevel = 100
		cfg.MaxMetricLevel = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("inverted dimension bounds fail", func(t *testing.T) {
		cfg := DefaultDomainConfig()
		cfg.MinDimension = 1
		cfg.MaxDimension = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive evolution delta fails", func(t *testing.T) {
		cfg := DefaultDomainConfig()
		cfg.SignificantEvolutionDelta = 0
		assert.Error(t, cfg.Validate())
	})
}
