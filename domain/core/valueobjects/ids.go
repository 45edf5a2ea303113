package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// StateID is a value object identifying a consciousness state snapshot
type StateID struct {
	value string
}

// NewStateID creates a new random StateID
func NewStateID() StateID {
	return StateID{value: uuid.New().String()}
}

// NewStateIDFromString creates a StateID from an existing string
func NewStateIDFromString(id string) (StateID, error) {
	if id == "" {
		return StateID{}, errors.New("state ID cannot be empty")
	}
	if !isValidUUID(id) {
		return StateID{}, errors.New("state ID must be a valid UUID")
	}
	return StateID{value: id}, nil
}

// String returns the string representation of the StateID
func (id StateID) String() string {
	return id.value
}

// Equals checks if two StateIDs are equal
func (id StateID) Equals(other StateID) bool {
	return id.value == other.value
}

// IsZero checks if the StateID is the zero value
func (id StateID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id StateID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *StateID) UnmarshalJSON(data []byte) error {
	return unmarshalIDString(data, &id.value, "StateID")
}

// ExperienceID is a value object identifying a felt experience record
type ExperienceID struct {
	value string
}

// NewExperienceID creates a new random ExperienceID
func NewExperienceID() ExperienceID {
	return ExperienceID{value: uuid.New().String()}
}

// NewExperienceIDFromString creates an ExperienceID from an existing string
func NewExperienceIDFromString(id string) (ExperienceID, error) {
	if id == "" {
		return ExperienceID{}, errors.New("experience ID cannot be empty")
	}
	if !isValidUUID(id) {
		return ExperienceID{}, errors.New("experience ID must be a valid UUID")
	}
	return ExperienceID{value: id}, nil
}

// String returns the string representation of the ExperienceID
func (id ExperienceID) String() string {
	return id.value
}

// Equals checks if two ExperienceIDs are equal
func (id ExperienceID) Equals(other ExperienceID) bool {
	return id.value == other.value
}

// IsZero checks if the ExperienceID is the zero value
func (id ExperienceID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id ExperienceID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ExperienceID) UnmarshalJSON(data []byte) error {
	return unmarshalIDString(data, &id.value, "ExperienceID")
}

// InteractionID is a value object identifying a single user interaction
type InteractionID struct {
	value string
}

// NewInteractionID creates a new random InteractionID
func NewInteractionID() InteractionID {
	return InteractionID{value: uuid.New().String()}
}

// NewInteractionIDFromString creates an InteractionID from an existing string
func NewInteractionIDFromString(id string) (InteractionID, error) {
	if id == "" {
		return InteractionID{}, errors.New("interaction ID cannot be empty")
	}
	if !isValidUUID(id) {
		return InteractionID{}, errors.New("interaction ID must be a valid UUID")
	}
	return InteractionID{value: id}, nil
}

// String returns the string representation of the InteractionID
func (id InteractionID) String() string {
	return id.value
}

// Equals checks if two InteractionIDs are equal
func (id InteractionID) Equals(other InteractionID) bool {
	return id.value == other.value
}

// IsZero checks if the InteractionID is the zero value
func (id InteractionID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id InteractionID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *InteractionID) UnmarshalJSON(data []byte) error {
	return unmarshalIDString(data, &id.value, "InteractionID")
}

// unmarshalIDString decodes a JSON string into an ID value
func unmarshalIDString(data []byte, target *string, typeName string) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New(typeName + " must be a string")
	}
	*target = string(data[1 : len(data)-1])
	return nil
}

// isValidUUID validates if a string is a valid UUID
func isValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
