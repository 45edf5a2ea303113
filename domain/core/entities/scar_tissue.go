package entities

import (
	"time"

	"github.com/google/uuid"

	"feelingmachine-backend/domain/core/valueobjects"
	pkgerrors "feelingmachine-backend/pkg/errors"
	"feelingmachine-backend/pkg/utils"
)

// EmotionalScarTissue is a reinforced trigger-to-reflex association, e.g.
// "Docker + SELinux + weekend" firing automatic protective concern. The
// record tracks reinforcement; no decay or healing logic exists yet, the
// IsActive flag and healing notes are placeholders for it.
type EmotionalScarTissue struct {
	ID string `json:"id" validate:"required,uuid4"`

	// Trigger
	TriggerPattern     string `json:"trigger_pattern" validate:"required"`
	TriggerDescription string `json:"trigger_description,omitempty"`

	// Source experiences that created this scar tissue
	SourceExperienceIDs []valueobjects.ExperienceID `json:"source_experience_ids,omitempty" validate:"max=100"`
	TimesReinforced     int                         `json:"times_reinforced" validate:"gte=1"`

	FirstOccurredAt  time.Time `json:"first_occurred_at"`
	LastReinforcedAt time.Time `json:"last_reinforced_at"`

	// Reflexive response
	ReflexiveFeeling         string  `json:"reflexive_feeling" validate:"required"`
	ReflexiveIntensity       float64 `json:"reflexive_intensity" validate:"gte=0,lte=10"`
	AutomaticResponsePattern string  `json:"automatic_response_pattern,omitempty"`

	// Strength
	Strength   float64 `json:"strength" validate:"gte=0,lte=10"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`

	// Healing placeholders
	IsActive     bool   `json:"is_active"`
	HealingNotes string `json:"healing_notes,omitempty"`
}

// NewEmotionalScarTissue constructs a newly formed scar-tissue record with a
// single reinforcement. New scar tissue is always active; healed records are
// rebuilt with ReconstructEmotionalScarTissue.
func NewEmotionalScarTissue(s EmotionalScarTissue) (*EmotionalScarTissue, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.TimesReinforced == 0 {
		s.TimesReinforced = 1
	}
	if s.LastReinforcedAt.IsZero() {
		s.LastReinforcedAt = time.Now().UTC()
	}
	s.IsActive = true

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReconstructEmotionalScarTissue rebuilds a persisted record without applying
// creation defaults, preserving the IsActive flag and reinforcement history
func ReconstructEmotionalScarTissue(s EmotionalScarTissue) (*EmotionalScarTissue, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks field bounds and required timestamps
func (s *EmotionalScarTissue) Validate() error {
	if s.FirstOccurredAt.IsZero() {
		return pkgerrors.NewValidationError("first_occurred_at is required")
	}
	if s.Confidence < 0 || s.Confidence > 1 {
		return pkgerrors.NewValidationErrorf("confidence must be between 0 and 1, got %v", s.Confidence).
			WithCause(pkgerrors.ErrConfidenceOutOfRange)
	}
	if err := utils.ValidateStruct(s); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// Reinforce records another occurrence of the trigger, optionally linking
// the experience that fired it
func (s *EmotionalScarTissue) Reinforce(at time.Time, source valueobjects.ExperienceID) {
	s.TimesReinforced++
	s.LastReinforcedAt = at
	if !source.IsZero() {
		s.SourceExperienceIDs = append(s.SourceExperienceIDs, source)
	}
}
