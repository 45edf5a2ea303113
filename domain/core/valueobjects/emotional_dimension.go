package valueobjects

import (
	"feelingmachine-backend/domain/config"
	pkgerrors "feelingmachine-backend/pkg/errors"
)

// EmotionalDimension is the VAD (Valence-Arousal-Dominance) triple, the
// standard affective-computing representation of an emotional state.
// Each axis lies in [-1, 1] by definition of the model.
type EmotionalDimension struct {
	valence   float64
	arousal   float64
	dominance float64
}

// NewEmotionalDimension creates a VAD triple with bounds validation using
// the default configuration
func NewEmotionalDimension(valence, arousal, dominance float64) (EmotionalDimension, error) {
	return NewEmotionalDimensionWithConfig(valence, arousal, dominance, config.DefaultDomainConfig())
}

// NewEmotionalDimensionWithConfig creates a VAD triple with bounds
// validation and configuration
func NewEmotionalDimensionWithConfig(valence, arousal, dominance float64, cfg *config.DomainConfig) (EmotionalDimension, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	axes := map[string]float64{
		"valence":   valence,
		"arousal":   arousal,
		"dominance": dominance,
	}
	for name, v := range axes {
		if v < cfg.MinDimension || v > cfg.MaxDimension {
			return EmotionalDimension{}, pkgerrors.NewValidationErrorf(
				"%s must be between %v and %v, got %v",
				name, cfg.MinDimension, cfg.MaxDimension, v).
				WithCause(pkgerrors.ErrDimensionOutOfRange)
		}
	}

	return EmotionalDimension{
		valence:   valence,
		arousal:   arousal,
		dominance: dominance,
	}, nil
}

// Valence returns the negative (-1) to positive (+1) axis
func (d EmotionalDimension) Valence() float64 {
	return d.valence
}

// Arousal returns the low (-1) to high (+1) intensity axis
func (d EmotionalDimension) Arousal() float64 {
	return d.arousal
}

// Dominance returns the powerless (-1) to in-control (+1) axis
func (d EmotionalDimension) Dominance() float64 {
	return d.dominance
}

// Equals checks if two VAD triples are equal
func (d EmotionalDimension) Equals(other EmotionalDimension) bool {
	return d.valence == other.valence &&
		d.arousal == other.arousal &&
		d.dominance == other.dominance
}
