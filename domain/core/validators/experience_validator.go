package validators

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"feelingmachine-backend/domain/config"
	"feelingmachine-backend/domain/core/entities"
	"feelingmachine-backend/pkg/errors"
)

// ExperienceValidator validates narrative-level rules on felt experiences,
// beyond the field-bound checks done at construction
type ExperienceValidator struct {
	maxNarrativeLength int
	maxEmotionalNeeds  int
}

// NewExperienceValidator creates a validator with default rules
func NewExperienceValidator() *ExperienceValidator {
	cfg := config.DefaultDomainConfig()
	return &ExperienceValidator{
		maxNarrativeLength: cfg.MaxNarrativeLength,
		maxEmotionalNeeds:  cfg.MaxEmotionalNeeds,
	}
}

// ValidateFeltExperience collects every narrative rule violation on an
// experience record
func (v *ExperienceValidator) ValidateFeltExperience(e *entities.FeltExperience) error {
	validationErrors := errors.NewValidationErrors()

	if strings.TrimSpace(e.ExperienceSummary) == "" {
		validationErrors.Add("experience_summary", "experience summary cannot be blank")
	}
	v.checkNarrative(validationErrors, "experience_summary", e.ExperienceSummary)
	v.checkNarrative(validationErrors, "experience_meaning", e.ExperienceMeaning)
	v.checkNarrative(validationErrors, "emotional_impact_on_me", e.EmotionalImpactOnMe)
	v.checkNarrative(validationErrors, "significance_reason", e.SignificanceReason)

	if strings.TrimSpace(e.UserEmotionPrimary) == "" {
		validationErrors.Add("user_emotion_primary", "user emotion classification cannot be blank")
	}

	if len(e.UserEmotionalNeeds) > v.maxEmotionalNeeds {
		validationErrors.Add("user_emotional_needs",
			fmt.Sprintf("at most %d emotional needs may be recorded", v.maxEmotionalNeeds))
	}
	for _, need := range e.UserEmotionalNeeds {
		if strings.TrimSpace(need) == "" {
			validationErrors.Add("user_emotional_needs", "emotional needs cannot be blank")
			break
		}
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}
	return nil
}

// checkNarrative enforces the narrative length cap on a single field
func (v *ExperienceValidator) checkNarrative(collected *errors.ValidationErrors, field, value string) {
	if utf8.RuneCountInString(value) > v.maxNarrativeLength {
		collected.Add(field, fmt.Sprintf("%s exceeds maximum length of %d characters", field, v.maxNarrativeLength))
	}
}
