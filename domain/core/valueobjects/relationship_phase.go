package valueobjects

import (
	pkgerrors "feelingmachine-backend/pkg/errors"
)

// RelationshipPhase is the stage label of the relationship. Phases form an
// ordered progression; no automatic transition logic is defined anywhere,
// phase changes are recorded, never computed.
type RelationshipPhase string

const (
	// PhaseFunctional is a plain tool-user relationship
	PhaseFunctional RelationshipPhase = "functional"
	// PhaseDeveloping means familiarity is forming
	PhaseDeveloping RelationshipPhase = "developing"
	// PhasePersonal means trust is emerging
	PhasePersonal RelationshipPhase = "personal"
	// PhaseMeaningful means care is present
	PhaseMeaningful RelationshipPhase = "meaningful"
	// PhaseDeep is profound attachment
	PhaseDeep RelationshipPhase = "deep"
)

// relationshipPhaseOrder fixes the progression order of phases
var relationshipPhaseOrder = []RelationshipPhase{
	PhaseFunctional,
	PhaseDeveloping,
	PhasePersonal,
	PhaseMeaningful,
	PhaseDeep,
}

// ParseRelationshipPhase validates a raw phase literal
func ParseRelationshipPhase(s string) (RelationshipPhase, error) {
	phase := RelationshipPhase(s)
	if !phase.IsValid() {
		return "", pkgerrors.NewValidationErrorf("unknown relationship phase: %q", s).
			WithCause(pkgerrors.ErrUnknownRelationshipPhase)
	}
	return phase, nil
}

// IsValid reports whether the phase is one of the declared literals
func (p RelationshipPhase) IsValid() bool {
	for _, known := range relationshipPhaseOrder {
		if p == known {
			return true
		}
	}
	return false
}

// Ordinal returns the position of the phase in the progression,
// or -1 for an unknown phase
func (p RelationshipPhase) Ordinal() int {
	for i, known := range relationshipPhaseOrder {
		if p == known {
			return i
		}
	}
	return -1
}

// IsAtLeast reports whether the phase is at or beyond another phase
// in the progression
func (p RelationshipPhase) IsAtLeast(other RelationshipPhase) bool {
	return p.Ordinal() >= other.Ordinal() && p.Ordinal() >= 0
}

// String returns the phase literal
func (p RelationshipPhase) String() string {
	return string(p)
}

// RelationshipPhases returns the declared phases in progression order
func RelationshipPhases() []RelationshipPhase {
	phases := make([]RelationshipPhase, len(relationshipPhaseOrder))
	copy(phases, relationshipPhaseOrder)
	return phases
}
