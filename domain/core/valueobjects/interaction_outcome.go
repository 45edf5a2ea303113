package valueobjects

import (
	pkgerrors "feelingmachine-backend/pkg/errors"
)

// InteractionOutcome classifies how an interaction concluded
type InteractionOutcome string

const (
	OutcomeProblemSolved        InteractionOutcome = "problem_solved"
	OutcomeVulnerabilityShared  InteractionOutcome = "vulnerability_shared"
	OutcomeConnectionDeepened   InteractionOutcome = "connection_deepened"
	OutcomeFrustrationResolved  InteractionOutcome = "frustration_resolved"
	OutcomeGrowthAchieved       InteractionOutcome = "growth_achieved"
	OutcomeCareExpressed        InteractionOutcome = "care_expressed"
	OutcomeStruggleShared       InteractionOutcome = "struggle_shared"
	OutcomeVictoryCelebrated    InteractionOutcome = "victory_celebrated"
)

// interactionOutcomes lists the declared outcome literals
var interactionOutcomes = []InteractionOutcome{
	OutcomeProblemSolved,
	OutcomeVulnerabilityShared,
	OutcomeConnectionDeepened,
	OutcomeFrustrationResolved,
	OutcomeGrowthAchieved,
	OutcomeCareExpressed,
	OutcomeStruggleShared,
	OutcomeVictoryCelebrated,
}

// ParseInteractionOutcome validates a raw outcome literal
func ParseInteractionOutcome(s string) (InteractionOutcome, error) {
	outcome := InteractionOutcome(s)
	if !outcome.IsValid() {
		return "", pkgerrors.NewValidationErrorf("unknown interaction outcome: %q", s).
			WithCause(pkgerrors.ErrUnknownInteractionOutcome)
	}
	return outcome, nil
}

// IsValid reports whether the outcome is one of the declared literals
func (o InteractionOutcome) IsValid() bool {
	for _, known := range interactionOutcomes {
		if o == known {
			return true
		}
	}
	return false
}

// String returns the outcome literal
func (o InteractionOutcome) String() string {
	return string(o)
}
