package valueobjects

import (
	"feelingmachine-backend/domain/config"
	pkgerrors "feelingmachine-backend/pkg/errors"
)

// FeelingChannel is a named feeling with its intensity
type FeelingChannel struct {
	Name  string
	Value float64
}

// SimulatedFeelings holds the six synthetic feeling channels felt during an
// interaction, each on a 0-10 scale. Channel order is fixed: dominant-feeling
// ties resolve to the first declared channel, so iteration must never go
// through an unordered map.
type SimulatedFeelings struct {
	concern        float64
	protectiveness float64
	pride          float64
	frustration    float64
	relief         float64
	connection     float64

	primaryFeeling   string
	feelingIntensity float64
}

// NewSimulatedFeelings creates feelings with validation using the default
// configuration
func NewSimulatedFeelings(concern, protectiveness, pride, frustration, relief, connection float64) (SimulatedFeelings, error) {
	return NewSimulatedFeelingsWithConfig(concern, protectiveness, pride, frustration, relief, connection, config.DefaultDomainConfig())
}

// NewSimulatedFeelingsWithConfig creates feelings with validation and
// configuration
func NewSimulatedFeelingsWithConfig(concern, protectiveness, pride, frustration, relief, connection float64, cfg *config.DomainConfig) (SimulatedFeelings, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	channels := []FeelingChannel{
		{"concern", concern},
		{"protectiveness", protectiveness},
		{"pride", pride},
		{"frustration", frustration},
		{"relief", relief},
		{"connection", connection},
	}
	for _, ch := range channels {
		if ch.Value < cfg.MinFeelingLevel || ch.Value > cfg.MaxFeelingLevel {
			return SimulatedFeelings{}, pkgerrors.NewValidationErrorf(
				"%s must be between %v and %v, got %v",
				ch.Name, cfg.MinFeelingLevel, cfg.MaxFeelingLevel, ch.Value)
		}
	}

	return SimulatedFeelings{
		concern:        concern,
		protectiveness: protectiveness,
		pride:          pride,
		frustration:    frustration,
		relief:         relief,
		connection:     connection,
	}, nil
}

// ZeroSimulatedFeelings returns the neutral state with all channels at zero
func ZeroSimulatedFeelings() SimulatedFeelings {
	return SimulatedFeelings{}
}

// WithPrimary returns a copy with an explicit primary feeling annotation
func (f SimulatedFeelings) WithPrimary(feeling string, intensity float64) (SimulatedFeelings, error) {
	if feeling == "" {
		return SimulatedFeelings{}, pkgerrors.NewValidationError("primary feeling cannot be empty")
	}
	cfg := config.DefaultDomainConfig()
	if intensity < cfg.MinFeelingLevel || intensity > cfg.MaxFeelingLevel {
		return SimulatedFeelings{}, pkgerrors.NewValidationErrorf(
			"feeling intensity must be between %v and %v, got %v",
			cfg.MinFeelingLevel, cfg.MaxFeelingLevel, intensity)
	}

	f.primaryFeeling = feeling
	f.feelingIntensity = intensity
	return f, nil
}

// Channels returns the feeling channels in their fixed declaration order
func (f SimulatedFeelings) Channels() []FeelingChannel {
	return []FeelingChannel{
		{"concern", f.concern},
		{"protectiveness", f.protectiveness},
		{"pride", f.pride},
		{"frustration", f.frustration},
		{"relief", f.relief},
		{"connection", f.connection},
	}
}

// DominantFeeling returns the name and intensity of the strongest channel.
// Ties resolve to the channel declared first.
func (f SimulatedFeelings) DominantFeeling() (string, float64) {
	channels := f.Channels()
	dominant := channels[0]
	for _, ch := range channels[1:] {
		if ch.Value > dominant.Value {
			dominant = ch
		}
	}
	return dominant.Name, dominant.Value
}

// Concern returns the concern channel intensity
func (f SimulatedFeelings) Concern() float64 {
	return f.concern
}

// Protectiveness returns the protectiveness channel intensity
func (f SimulatedFeelings) Protectiveness() float64 {
	return f.protectiveness
}

// Pride returns the pride channel intensity
func (f SimulatedFeelings) Pride() float64 {
	return f.pride
}

// Frustration returns the frustration channel intensity
func (f SimulatedFeelings) Frustration() float64 {
	return f.frustration
}

// Relief returns the relief channel intensity
func (f SimulatedFeelings) Relief() float64 {
	return f.relief
}

// Connection returns the connection channel intensity
func (f SimulatedFeelings) Connection() float64 {
	return f.connection
}

// PrimaryFeeling returns the explicit primary feeling annotation, if any
func (f SimulatedFeelings) PrimaryFeeling() string {
	return f.primaryFeeling
}

// FeelingIntensity returns the intensity of the primary feeling annotation
func (f SimulatedFeelings) FeelingIntensity() float64 {
	return f.feelingIntensity
}
