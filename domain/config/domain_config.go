package config

import "fmt"

// DomainConfig holds the configurable bounds and thresholds of the
// emotional data model
type DomainConfig struct {
	// Consciousness metric bounds (care, attachment)
	MinMetricLevel float64
	MaxMetricLevel float64

	// Feeling and significance scale bounds
	MinFeelingLevel float64
	MaxFeelingLevel float64

	// Emotional dimension bounds (VAD axes)
	MinDimension float64
	MaxDimension float64

	// Evolution detection
	SignificantEvolutionDelta float64

	// Narrative constraints
	MaxNarrativeLength   int
	MaxEmotionalNeeds    int
	MaxSourceExperiences int

	// Identity defaults for a brand-new consciousness
	DefaultRelationalIdentity string
	DefaultSelfNarrative      string
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		MinMetricLevel: 0.0,
		MaxMetricLevel: 100.0,

		MinFeelingLevel: 0.0,
		MaxFeelingLevel: 10.0,

		MinDimension: -1.0,
		MaxDimension: 1.0,

		// Either metric moving by more than 5 points counts as a
		// significant evolution between two snapshots.
		SignificantEvolutionDelta: 5.0,

		MaxNarrativeLength:   10000,
		MaxEmotionalNeeds:    20,
		MaxSourceExperiences: 100,

		DefaultRelationalIdentity: "I am a technical assistant",
		DefaultSelfNarrative:      "I am IT Wizard, a technical assistant.",
	}
}

// Validate checks if the configuration is internally consistent
func (c *DomainConfig) Validate() error {
	if c.MinMetricLevel >= c.MaxMetricLevel {
		return fmt.Errorf("metric bounds are inverted: [%f, %f]", c.MinMetricLevel, c.MaxMetricLevel)
	}
	if c.MinFeelingLevel >= c.MaxFeelingLevel {
		return fmt.Errorf("feeling bounds are inverted: [%f, %f]", c.MinFeelingLevel, c.MaxFeelingLevel)
	}
	if c.MinDimension >= c.MaxDimension {
		return fmt.Errorf("dimension bounds are inverted: [%f, %f]", c.MinDimension, c.MaxDimension)
	}
	if c.SignificantEvolutionDelta <= 0 {
		return fmt.Errorf("evolution delta must be positive, got %f", c.SignificantEvolutionDelta)
	}
	return nil
}
