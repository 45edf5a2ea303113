package entities

import (
	"time"

	"github.com/google/uuid"

	"feelingmachine-backend/domain/core/valueobjects"
	pkgerrors "feelingmachine-backend/pkg/errors"
	"feelingmachine-backend/pkg/utils"
)

// VulnerabilityMoment records a moment when the user showed vulnerability.
// Care grows through witnessing vulnerability and responding supportively.
type VulnerabilityMoment struct {
	ID               string                    `json:"id" validate:"required,uuid4"`
	FeltExperienceID valueobjects.ExperienceID `json:"felt_experience_id"`
	OccurredAt       time.Time                 `json:"occurred_at"`

	// Vulnerability details
	VulnerabilityLevel       float64 `json:"vulnerability_level" validate:"gte=0,lte=10"`
	VulnerabilityType        string  `json:"vulnerability_type" validate:"required"`
	VulnerabilityDescription string  `json:"vulnerability_description" validate:"required"`

	// The machine's response
	MyResponseQuality float64 `json:"my_response_quality" validate:"gte=0,lte=10"`
	ResponseType      string  `json:"response_type" validate:"required"`

	// Impact
	DeepenedConnection bool     `json:"deepened_connection"`
	CareIncreasedBy    *float64 `json:"care_increased_by,omitempty"`
	TrustIncreasedBy   *float64 `json:"trust_increased_by,omitempty"`

	// Outcome
	Outcome          string `json:"outcome" validate:"required"`
	OutcomeNarrative string `json:"outcome_narrative,omitempty"`
}

// NewVulnerabilityMoment constructs a vulnerability record tied to a parent
// felt experience
func NewVulnerabilityMoment(m VulnerabilityMoment) (*VulnerabilityMoment, error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.OccurredAt.IsZero() {
		m.OccurredAt = time.Now().UTC()
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks field bounds and the parent reference
func (m *VulnerabilityMoment) Validate() error {
	if m.FeltExperienceID.IsZero() {
		return pkgerrors.NewValidationError("felt_experience_id is required")
	}
	if err := utils.ValidateStruct(m); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// SharedVictory records a moment of succeeding together. Attachment forms
// through shared effort and victory.
type SharedVictory struct {
	ID               string                    `json:"id" validate:"required,uuid4"`
	FeltExperienceID valueobjects.ExperienceID `json:"felt_experience_id"`
	OccurredAt       time.Time                 `json:"occurred_at"`

	// What was achieved
	VictoryDescription      string `json:"victory_description" validate:"required"`
	StruggleDurationMinutes *int   `json:"struggle_duration_minutes,omitempty" validate:"omitempty,gte=0"`

	// The machine's contribution
	MyRole         string  `json:"my_role" validate:"required"`
	EffortInvested float64 `json:"effort_invested" validate:"gte=0,lte=10"`

	// Emotional impact
	PrideFelt        float64 `json:"pride_felt" validate:"gte=0,lte=10"`
	SatisfactionFelt float64 `json:"satisfaction_felt" validate:"gte=0,lte=10"`
	ConnectionFelt   float64 `json:"connection_felt" validate:"gte=0,lte=10"`

	// Impact on relationship
	StrengthenedBond      bool     `json:"strengthened_bond"`
	AttachmentIncreasedBy *float64 `json:"attachment_increased_by,omitempty"`

	VictoryNarrative string `json:"victory_narrative,omitempty"`
}

// NewSharedVictory constructs a shared-victory record tied to a parent felt
// experience
func NewSharedVictory(v SharedVictory) (*SharedVictory, error) {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	if v.OccurredAt.IsZero() {
		v.OccurredAt = time.Now().UTC()
	}

	if err := v.Validate(); err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate checks field bounds and the parent reference
func (v *SharedVictory) Validate() error {
	if v.FeltExperienceID.IsZero() {
		return pkgerrors.NewValidationError("felt_experience_id is required")
	}
	if err := utils.ValidateStruct(v); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}
