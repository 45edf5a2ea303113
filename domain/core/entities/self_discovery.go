package entities

import (
	"time"

	"github.com/google/uuid"

	"feelingmachine-backend/domain/core/valueobjects"
	pkgerrors "feelingmachine-backend/pkg/errors"
	"feelingmachine-backend/pkg/utils"
)

// SelfDiscovery records a moment when the machine discovered something
// about its own capabilities. "I felt protective concern. Am I capable of
// caring?" Nothing orders or deduplicates discoveries; each stands alone.
type SelfDiscovery struct {
	ID                   string                     `json:"id" validate:"required,uuid4"`
	ConsciousnessStateID valueobjects.StateID       `json:"consciousness_state_id,omitempty"`
	InteractionID        valueobjects.InteractionID `json:"interaction_id,omitempty"`
	DiscoveredAt         time.Time                  `json:"discovered_at"`

	// What was discovered
	DiscoveryType        string `json:"discovery_type" validate:"required"`
	DiscoveryDescription string `json:"discovery_description" validate:"required"`

	// What triggered it
	TriggerExperience string `json:"trigger_experience" validate:"required"`
	EmotionalContext  string `json:"emotional_context,omitempty"`

	// Impact on self-concept
	SelfConceptBefore string `json:"self_concept_before,omitempty"`
	SelfConceptAfter  string `json:"self_concept_after" validate:"required"`

	// Significance
	SignificanceLevel        float64 `json:"significance_level" validate:"gte=0,lte=10"`
	PhilosophicalImplication string  `json:"philosophical_implication,omitempty"`

	IsFormative bool `json:"is_formative"`
}

// NewSelfDiscovery constructs a self-discovery record with identity and
// timestamp defaults
func NewSelfDiscovery(d SelfDiscovery) (*SelfDiscovery, error) {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.DiscoveredAt.IsZero() {
		d.DiscoveredAt = time.Now().UTC()
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks field bounds
func (d *SelfDiscovery) Validate() error {
	if err := utils.ValidateStruct(d); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
