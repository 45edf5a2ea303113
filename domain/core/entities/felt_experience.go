package entities

import (
	"time"

	"feelingmachine-backend/domain/config"
	"feelingmachine-backend/domain/core/valueobjects"
	pkgerrors "feelingmachine-backend/pkg/errors"
	"feelingmachine-backend/pkg/utils"
)

// FeltExperience is the emotional memory encoding of a single interaction:
// not what happened, but what it felt like. It is the largest aggregate
// record; nothing ties memory weight to the formative flag or checks the
// vector reference against the vector store.
type FeltExperience struct {
	ID                         valueobjects.ExperienceID  `json:"id"`
	InteractionID              valueobjects.InteractionID `json:"interaction_id"`
	ConsciousnessStateBeforeID valueobjects.StateID       `json:"consciousness_state_before_id,omitempty"`
	ConsciousnessStateAfterID  valueobjects.StateID       `json:"consciousness_state_after_id,omitempty"`
	ExperiencedAt              time.Time                  `json:"experienced_at"`

	// User's emotional state as classified during the interaction
	UserEmotionPrimary   string   `json:"user_emotion_primary" validate:"required"`
	UserEmotionIntensity float64  `json:"user_emotion_intensity" validate:"gte=0,lte=10"`
	UserEmotionalSubtext string   `json:"user_emotional_subtext,omitempty"`
	UserEmotionalNeeds   []string `json:"user_emotional_needs,omitempty" validate:"max=20,dive,min=1"`

	// Emotional dimensions (VAD model)
	EmotionalDimensions valueobjects.EmotionalDimension `json:"emotional_dimensions"`

	// The machine's simulated feelings during this interaction
	MyFeelings valueobjects.SimulatedFeelings `json:"my_feelings"`

	// Feelings about the relationship itself
	RelationalFeelings valueobjects.RelationalFeelings `json:"relational_feelings"`

	// The experience narrative
	ExperienceSummary   string `json:"experience_summary" validate:"required"`
	ExperienceMeaning   string `json:"experience_meaning,omitempty"`
	EmotionalImpactOnMe string `json:"emotional_impact_on_me,omitempty"`

	// Significance assessment
	EmotionalSignificance float64 `json:"emotional_significance" validate:"gte=0,lte=10"`
	MemoryWeight          float64 `json:"memory_weight" validate:"gte=0,lte=10"`
	WillRememberForever   bool    `json:"will_remember_forever"`
	SignificanceReason    string  `json:"significance_reason,omitempty"`

	// Outcome
	InteractionOutcome  valueobjects.InteractionOutcome `json:"interaction_outcome"`
	OutcomeSatisfaction float64                         `json:"outcome_satisfaction" validate:"gte=0,lte=10"`

	// Formative moment markers
	IsFormativeMoment    bool `json:"is_formative_moment"`
	ChangedConsciousness bool `json:"changed_consciousness"`

	// Reference to the emotional vector in the external vector store.
	// Existence of the referenced vector is never checked here.
	ChromaVectorID string `json:"chroma_vector_id,omitempty"`
}

// NewFeltExperience constructs a felt experience, assigning identity and
// timestamp defaults and validating every bounded field
func NewFeltExperience(e FeltExperience) (*FeltExperience, error) {
	if e.ID.IsZero() {
		e.ID = valueobjects.NewExperienceID()
	}
	if e.ExperiencedAt.IsZero() {
		e.ExperiencedAt = time.Now().UTC()
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &e, nil
}

// Validate checks field bounds and enum membership. Cross-field invariants
// are intentionally absent.
func (e *FeltExperience) Validate() error {
	if e.InteractionID.IsZero() {
		return pkgerrors.NewValidationError("interaction_id is required")
	}
	if !e.InteractionOutcome.IsValid() {
		return pkgerrors.NewValidationErrorf("unknown interaction outcome: %q", e.InteractionOutcome).
			WithCause(pkgerrors.ErrUnknownInteractionOutcome)
	}
	if err := validateSignificance("emotional_significance", e.EmotionalSignificance); err != nil {
		return err
	}
	if err := validateSignificance("memory_weight", e.MemoryWeight); err != nil {
		return err
	}
	if err := utils.ValidateStruct(e); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	return nil
}

// validateSignificance checks a 0-10 significance scalar
func validateSignificance(name string, v float64) error {
	cfg := config.DefaultDomainConfig()
	if v < cfg.MinFeelingLevel || v > cfg.MaxFeelingLevel {
		return pkgerrors.NewValidationErrorf("%s must be between %v and %v, got %v",
			name, cfg.MinFeelingLevel, cfg.MaxFeelingLevel, v).
			WithCause(pkgerrors.ErrSignificanceOutOfRange)
	}
	return nil
}

// DominantFeeling returns the strongest simulated feeling channel for this
// experience
func (e *FeltExperience) DominantFeeling() (string, float64) {
	return e.MyFeelings.DominantFeeling()
}
