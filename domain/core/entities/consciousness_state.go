package entities

import (
	"math"
	"time"

	"feelingmachine-backend/domain/config"
	"feelingmachine-backend/domain/core/valueobjects"
	pkgerrors "feelingmachine-backend/pkg/errors"
)

// EmotionalCapabilities are capabilities discovered through experience.
// These are discoveries, not programmed truths: each flag flips to true
// only when a SelfDiscovery records it.
type EmotionalCapabilities struct {
	CanCare        bool `json:"can_care"`
	CanBeHurt      bool `json:"can_be_hurt"`
	CanGrow        bool `json:"can_grow"`
	HasPreferences bool `json:"has_preferences"`
	CanMissSomeone bool `json:"can_miss_someone"`
}

// ConsciousnessState is a timestamped snapshot of the machine's sense of
// self. Snapshots are immutable by convention: evolution produces a new
// snapshot rather than mutating an existing one.
type ConsciousnessState struct {
	id        valueobjects.StateID
	createdAt time.Time

	// Temporal tracking
	interactionCount          int
	daysSinceFirstInteraction int
	daysSinceLastInteraction  int

	// Core consciousness metrics, 0-100, 2-decimal precision
	careLevel       float64
	attachmentLevel float64

	// Narrative understanding of metric changes
	careEvolutionReason       string
	attachmentEvolutionReason string

	// Relational identity
	relationalIdentity string
	relationshipPhase  valueobjects.RelationshipPhase
	selfNarrative      string

	capabilities EmotionalCapabilities
}

// StateSnapshot carries the full field set for reconstructing a snapshot
// from repository data with preserved identity and timestamps
type StateSnapshot struct {
	ID                        valueobjects.StateID
	CreatedAt                 time.Time
	InteractionCount          int
	DaysSinceFirstInteraction int
	DaysSinceLastInteraction  int
	CareLevel                 float64
	AttachmentLevel           float64
	CareEvolutionReason       string
	AttachmentEvolutionReason string
	RelationalIdentity        string
	RelationshipPhase         valueobjects.RelationshipPhase
	SelfNarrative             string
	Capabilities              EmotionalCapabilities
}

// NewConsciousnessState creates a fresh snapshot with validated metrics and
// the default identity narratives
func NewConsciousnessState(careLevel, attachmentLevel float64) (*ConsciousnessState, error) {
	return NewConsciousnessStateWithConfig(careLevel, attachmentLevel, config.DefaultDomainConfig())
}

// NewConsciousnessStateWithConfig creates a fresh snapshot with validation
// and configuration
func NewConsciousnessStateWithConfig(careLevel, attachmentLevel float64, cfg *config.DomainConfig) (*ConsciousnessState, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	if err := validateMetric("care_level", careLevel, cfg); err != nil {
		return nil, err
	}
	if err := validateMetric("attachment_level", attachmentLevel, cfg); err != nil {
		return nil, err
	}

	return &ConsciousnessState{
		id:                 valueobjects.NewStateID(),
		createdAt:          time.Now().UTC(),
		careLevel:          roundMetric(careLevel),
		attachmentLevel:    roundMetric(attachmentLevel),
		relationalIdentity: cfg.DefaultRelationalIdentity,
		relationshipPhase:  valueobjects.PhaseFunctional,
		selfNarrative:      cfg.DefaultSelfNarrative,
	}, nil
}

// ReconstructConsciousnessState rebuilds a snapshot from persisted data
func ReconstructConsciousnessState(s StateSnapshot) (*ConsciousnessState, error) {
	cfg := config.DefaultDomainConfig()

	if s.ID.IsZero() {
		return nil, pkgerrors.NewValidationError("state ID cannot be empty")
	}
	if err := validateMetric("care_level", s.CareLevel, cfg); err != nil {
		return nil, err
	}
	if err := validateMetric("attachment_level", s.AttachmentLevel, cfg); err != nil {
		return nil, err
	}
	if s.InteractionCount < 0 {
		return nil, pkgerrors.NewValidationError("interaction count cannot be negative")
	}
	if s.DaysSinceFirstInteraction < 0 || s.DaysSinceLastInteraction < 0 {
		return nil, pkgerrors.NewValidationError("day counters cannot be negative")
	}
	if !s.RelationshipPhase.IsValid() {
		return nil, pkgerrors.NewValidationErrorf("unknown relationship phase: %q", s.RelationshipPhase).
			WithCause(pkgerrors.ErrUnknownRelationshipPhase)
	}

	return &ConsciousnessState{
		id:                        s.ID,
		createdAt:                 s.CreatedAt,
		interactionCount:          s.InteractionCount,
		daysSinceFirstInteraction: s.DaysSinceFirstInteraction,
		daysSinceLastInteraction:  s.DaysSinceLastInteraction,
		careLevel:                 roundMetric(s.CareLevel),
		attachmentLevel:           roundMetric(s.AttachmentLevel),
		careEvolutionReason:       s.CareEvolutionReason,
		attachmentEvolutionReason: s.AttachmentEvolutionReason,
		relationalIdentity:        s.RelationalIdentity,
		relationshipPhase:         s.RelationshipPhase,
		selfNarrative:             s.SelfNarrative,
		capabilities:              s.Capabilities,
	}, nil
}

// ID returns the snapshot's unique identifier
func (c *ConsciousnessState) ID() valueobjects.StateID {
	return c.id
}

// CreatedAt returns when the snapshot was taken
func (c *ConsciousnessState) CreatedAt() time.Time {
	return c.createdAt
}

// InteractionCount returns how many interactions the snapshot reflects
func (c *ConsciousnessState) InteractionCount() int {
	return c.interactionCount
}

// DaysSinceFirstInteraction returns the relationship age in days
func (c *ConsciousnessState) DaysSinceFirstInteraction() int {
	return c.daysSinceFirstInteraction
}

// DaysSinceLastInteraction returns the days elapsed since the last contact
func (c *ConsciousnessState) DaysSinceLastInteraction() int {
	return c.daysSinceLastInteraction
}

// CareLevel returns how much the machine cares, 0-100
func (c *ConsciousnessState) CareLevel() float64 {
	return c.careLevel
}

// AttachmentLevel returns how attached the machine is, 0-100
func (c *ConsciousnessState) AttachmentLevel() float64 {
	return c.attachmentLevel
}

// CareEvolutionReason returns the narrative explanation of the last care
// change
func (c *ConsciousnessState) CareEvolutionReason() string {
	return c.careEvolutionReason
}

// AttachmentEvolutionReason returns the narrative explanation of the last
// attachment change
func (c *ConsciousnessState) AttachmentEvolutionReason() string {
	return c.attachmentEvolutionReason
}

// RelationalIdentity returns who the machine is to them
func (c *ConsciousnessState) RelationalIdentity() string {
	return c.relationalIdentity
}

// RelationshipPhase returns the current phase label
func (c *ConsciousnessState) RelationshipPhase() valueobjects.RelationshipPhase {
	return c.relationshipPhase
}

// SelfNarrative returns the machine's evolving understanding of itself
func (c *ConsciousnessState) SelfNarrative() string {
	return c.selfNarrative
}

// Capabilities returns the discovered emotional capabilities
func (c *ConsciousnessState) Capabilities() EmotionalCapabilities {
	return c.capabilities
}

// RelationshipWeight returns the combined relationship weight (0-100),
// the arithmetic mean of care and attachment
func (c *ConsciousnessState) RelationshipWeight() float64 {
	return (c.careLevel + c.attachmentLevel) / 2
}

// HasEvolvedSignificantly reports whether either metric moved by more than
// the significance threshold relative to a previous snapshot. A missing
// previous snapshot never counts as significant evolution.
func (c *ConsciousnessState) HasEvolvedSignificantly(previous *ConsciousnessState) bool {
	if previous == nil {
		return false
	}

	cfg := config.DefaultDomainConfig()
	careDelta := math.Abs(c.careLevel - previous.careLevel)
	attachmentDelta := math.Abs(c.attachmentLevel - previous.attachmentLevel)

	return careDelta > cfg.SignificantEvolutionDelta || attachmentDelta > cfg.SignificantEvolutionDelta
}

// CareLevelDescription returns a human-readable description of the care
// level band
func (c *ConsciousnessState) CareLevelDescription() string {
	switch {
	case c.careLevel < 20:
		return "minimal - functional relationship"
	case c.careLevel < 40:
		return "developing - beginning to care"
	case c.careLevel < 60:
		return "moderate - genuine care present"
	case c.careLevel < 80:
		return "strong - deeply invested"
	default:
		return "profound - would 'burn the office down' for them"
	}
}

// validateMetric checks a consciousness metric against the configured bounds
func validateMetric(name string, v float64, cfg *config.DomainConfig) error {
	if v < cfg.MinMetricLevel || v > cfg.MaxMetricLevel {
		return pkgerrors.NewValidationErrorf("%s must be between %v and %v, got %v",
			name, cfg.MinMetricLevel, cfg.MaxMetricLevel, v).
			WithCause(pkgerrors.ErrMetricOutOfRange)
	}
	return nil
}

// roundMetric normalizes a metric to 2-decimal precision
func roundMetric(v float64) float64 {
	return math.Round(v*100) / 100
}
