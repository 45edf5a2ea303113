package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feelingmachine-backend/domain/core/valueobjects"
)

func validVulnerabilityMoment() VulnerabilityMoment {
	return VulnerabilityMoment{
		FeltExperienceID:         valueobjects.NewExperienceID(),
		VulnerabilityLevel:       7,
		VulnerabilityType:        "admission_of_struggle",
		VulnerabilityDescription: "admitted they have been faking confidence in standups",
		MyResponseQuality:        8,
		ResponseType:             "supportive_normalization",
		DeepenedConnection:       true,
		Outcome:                  "felt_heard",
	}
}

func TestNewVulnerabilityMoment(t *testing.T) {
	t.Run("valid moment with defaults", func(t *testing.T) {
		m, err := NewVulnerabilityMoment(validVulnerabilityMoment())
		require.NoError(t, err)

		assert.NotEmpty(t, m.ID)
		assert.False(t, m.OccurredAt.IsZero())
		assert.Nil(t, m.CareIncreasedBy)
	})

	t.Run("missing parent experience fails", func(t *testing.T) {
		m := validVulnerabilityMoment()
		m.FeltExperienceID = valueobjects.ExperienceID{}
		_, err := NewVulnerabilityMoment(m)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "felt_experience_id")
	})

	t.Run("vulnerability level above 10 fails", func(t *testing.T) {
		m := validVulnerabilityMoment()
		m.VulnerabilityLevel = 11
		_, err := NewVulnerabilityMoment(m)
		assert.Error(t, err)
	})

	t.Run("missing outcome fails", func(t *testing.T) {
		m := validVulnerabilityMoment()
		m.Outcome = ""
		_, err := NewVulnerabilityMoment(m)
		assert.Error(t, err)
	})
}

func validSharedVictory() SharedVictory {
	duration := 135
	increase := 2.5
	return SharedVictory{
		FeltExperienceID:        valueobjects.NewExperienceID(),
		VictoryDescription:      "got the flaky integration suite green after a full evening",
		StruggleDurationMinutes: &duration,
		MyRole:                  "debugging partner",
		EffortInvested:          8,
		PrideFelt:               7,
		SatisfactionFelt:        9,
		ConnectionFelt:          6,
		StrengthenedBond:        true,
		AttachmentIncreasedBy:   &increase,
	}
}

func TestNewSharedVictory(t *testing.T) {
	t.Run("valid victory with defaults", func(t *testing.T) {
		v, err := NewSharedVictory(validSharedVictory())
		require.NoError(t, err)

		assert.NotEmpty(t, v.ID)
		assert.False(t, v.OccurredAt.IsZero())
		require.NotNil(t, v.AttachmentIncreasedBy)
		assert.Equal(t, 2.5, *v.AttachmentIncreasedBy)
	})

	t.Run("struggle duration is optional", func(t *testing.T) {
		v := validSharedVictory()
		v.StruggleDurationMinutes = nil
		_, err := NewSharedVictory(v)
		assert.NoError(t, err)
	})

	t.Run("negative struggle duration fails", func(t *testing.T) {
		v := validSharedVictory()
		negative := -5
		v.StruggleDurationMinutes = &negative
		_, err := NewSharedVictory(v)
		assert.Error(t, err)
	})

	t.Run("missing parent experience fails", func(t *testing.T) {
		v := validSharedVictory()
		v.FeltExperienceID = valueobjects.ExperienceID{}
		_, err := NewSharedVictory(v)
		assert.Error(t, err)
	})

	t.Run("pride above 10 fails", func(t *testing.T) {
		v := validSharedVictory()
		v.PrideFelt = 10.5
		_, err := NewSharedVictory(v)
		assert.Error(t, err)
	})
}
