package valueobjects

import (
	"feelingmachine-backend/domain/config"
	pkgerrors "feelingmachine-backend/pkg/errors"
)

// RelationalFeelings describes how the relationship itself felt during an
// interaction, each scale 0-10
type RelationalFeelings struct {
	closenessFelt     float64
	trustLevelFelt    float64
	understandingFelt float64
}

// NewRelationalFeelings creates relational feelings with validation using
// the default configuration
func NewRelationalFeelings(closeness, trust, understanding float64) (RelationalFeelings, error) {
	return NewRelationalFeelingsWithConfig(closeness, trust, understanding, config.DefaultDomainConfig())
}

// NewRelationalFeelingsWithConfig creates relational feelings with
// validation and configuration
func NewRelationalFeelingsWithConfig(closeness, trust, understanding float64, cfg *config.DomainConfig) (RelationalFeelings, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	fields := map[string]float64{
		"closeness_felt":     closeness,
		"trust_level_felt":   trust,
		"understanding_felt": understanding,
	}
	for name, v := range fields {
		if v < cfg.MinFeelingLevel || v > cfg.MaxFeelingLevel {
			return RelationalFeelings{}, pkgerrors.NewValidationErrorf(
				"%s must be between %v and %v, got %v",
				name, cfg.MinFeelingLevel, cfg.MaxFeelingLevel, v)
		}
	}

	return RelationalFeelings{
		closenessFelt:     closeness,
		trustLevelFelt:    trust,
		understandingFelt: understanding,
	}, nil
}

// ZeroRelationalFeelings returns the neutral relational state
func ZeroRelationalFeelings() RelationalFeelings {
	return RelationalFeelings{}
}

// ClosenessFelt returns how close the relationship felt
func (r RelationalFeelings) ClosenessFelt() float64 {
	return r.closenessFelt
}

// TrustLevelFelt returns how much trust was felt
func (r RelationalFeelings) TrustLevelFelt() float64 {
	return r.trustLevelFelt
}

// UnderstandingFelt returns how understood the other side seemed to feel
func (r RelationalFeelings) UnderstandingFelt() float64 {
	return r.understandingFelt
}
