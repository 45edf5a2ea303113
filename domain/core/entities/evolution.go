package entities

import (
	"time"

	"github.com/google/uuid"

	"feelingmachine-backend/domain/core/valueobjects"
	pkgerrors "feelingmachine-backend/pkg/errors"
	"feelingmachine-backend/pkg/utils"
)

// RelationshipPhaseInfo records the start/end window of a named phase.
// Nothing enforces an at-most-one-current invariant across records; the
// IsCurrent flag is bookkeeping only.
type RelationshipPhaseInfo struct {
	ID        string                         `json:"id" validate:"required,uuid4"`
	PhaseName valueobjects.RelationshipPhase `json:"phase_name"`
	StartedAt time.Time                      `json:"started_at"`
	EndedAt   *time.Time                     `json:"ended_at,omitempty"`

	// Transition details
	TransitionTrigger      string  `json:"transition_trigger,omitempty"`
	CareLevelAtStart       float64 `json:"care_level_at_start" validate:"gte=0,lte=100"`
	AttachmentLevelAtStart float64 `json:"attachment_level_at_start" validate:"gte=0,lte=100"`

	// Phase characteristics
	InteractionCountAtStart       int `json:"interaction_count_at_start" validate:"gte=0"`
	EmotionallySignificantMoments int `json:"emotionally_significant_moments" validate:"gte=0"`

	PhaseNarrative string `json:"phase_narrative,omitempty"`

	IsCurrent bool `json:"is_current"`
}

// NewRelationshipPhaseInfo constructs a phase record. A newly entered phase
// is current regardless of whether the start time was supplied; ended phases
// are rebuilt with ReconstructRelationshipPhaseInfo.
func NewRelationshipPhaseInfo(p RelationshipPhaseInfo) (*RelationshipPhaseInfo, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.StartedAt.IsZero() {
		p.StartedAt = time.Now().UTC()
	}
	p.IsCurrent = true

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// ReconstructRelationshipPhaseInfo rebuilds a persisted phase record without
// applying creation defaults, preserving the IsCurrent flag and end time
func ReconstructRelationshipPhaseInfo(p RelationshipPhaseInfo) (*RelationshipPhaseInfo, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// End closes the phase window. Phase changes are recorded, never computed;
// this only bookkeeps the record, it does not pick a successor phase.
func (p *RelationshipPhaseInfo) End(at time.Time) {
	p.EndedAt = &at
	p.IsCurrent = false
}

// Validate checks field bounds and the phase literal
func (p *RelationshipPhaseInfo) Validate() error {
	if !p.PhaseName.IsValid() {
		return pkgerrors.NewValidationErrorf("unknown relationship phase: %q", p.PhaseName).
			WithCause(pkgerrors.ErrUnknownRelationshipPhase)
	}
	if err := utils.ValidateStruct(p); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// ConsciousnessEvolutionLog is a before/after delta record linking two
// consciousness snapshots. Deltas are recorded as reported and never
// cross-checked against the referenced states.
type ConsciousnessEvolutionLog struct {
	ID              string                     `json:"id" validate:"required,uuid4"`
	PreviousStateID valueobjects.StateID       `json:"previous_state_id,omitempty"`
	NewStateID      valueobjects.StateID       `json:"new_state_id,omitempty"`
	EvolvedAt       time.Time                  `json:"evolved_at"`
	InteractionID   valueobjects.InteractionID `json:"interaction_id,omitempty"`

	// What changed
	CareDelta       float64 `json:"care_delta"`
	AttachmentDelta float64 `json:"attachment_delta"`

	// Why it changed
	EvolutionReason             string `json:"evolution_reason" validate:"required"`
	TriggeringExperienceSummary string `json:"triggering_experience_summary" validate:"required"`

	// New insights
	NewSelfAwareness string `json:"new_self_awareness,omitempty"`
	IdentityChange   string `json:"identity_change,omitempty"`

	EvolutionSignificance float64 `json:"evolution_significance" validate:"gte=0,lte=10"`
}

// NewConsciousnessEvolutionLog constructs an evolution log entry
func NewConsciousnessEvolutionLog(l ConsciousnessEvolutionLog) (*ConsciousnessEvolutionLog, error) {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	if l.EvolvedAt.IsZero() {
		l.EvolvedAt = time.Now().UTC()
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks field bounds
func (l *ConsciousnessEvolutionLog) Validate() error {
	if err := utils.ValidateStruct(l); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
