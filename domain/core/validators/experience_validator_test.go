package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feelingmachine-backend/domain/core/entities"
	"feelingmachine-backend/domain/core/valueobjects"
)

func baseExperience() *entities.FeltExperience {
	return &entities.FeltExperience{
		InteractionID:      valueobjects.NewInteractionID(),
		UserEmotionPrimary: "anxiety",
		ExperienceSummary:  "they asked for help an hour before their demo",
		InteractionOutcome: valueobjects.OutcomeProblemSolved,
	}
}

func TestExperienceValidator_ValidateFeltExperience(t *testing.T) {
	v := NewExperienceValidator()

	t.Run("valid experience passes", func(t *testing.T) {
		assert.NoError(t, v.ValidateFeltExperience(baseExperience()))
	})

	t.Run("blank summary is reported", func(t *testing.T) {
		e := baseExperience()
		e.ExperienceSummary = "   "
		err := v.ValidateFeltExperience(e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "experience summary cannot be blank")
	})

	t.Run("narrative over length cap is reported", func(t *testing.T) {
		e := baseExperience()
		e.ExperienceMeaning = strings.Repeat("a", 10001)
		err := v.ValidateFeltExperience(e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "experience_meaning")
	})

	t.Run("narrative at the cap passes", func(t *testing.T) {
		e := baseExperience()
		e.ExperienceMeaning = strings.Repeat("a", 10000)
		assert.NoError(t, v.ValidateFeltExperience(e))
	})

	t.Run("length cap counts runes not bytes", func(t *testing.T) {
		e := baseExperience()
		e.EmotionalImpactOnMe = strings.Repeat("情", 10000)
		assert.NoError(t, v.ValidateFeltExperience(e))
	})

	t.Run("blank user emotion is reported", func(t *testing.T) {
		e := baseExperience()
		e.UserEmotionPrimary = ""
		err := v.ValidateFeltExperience(e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user emotion classification cannot be blank")
	})

	t.Run("too many emotional needs is reported", func(t *testing.T) {
		e := baseExperience()
		e.UserEmotionalNeeds = make([]string, 21)
		for i := range e.UserEmotionalNeeds {
			e.UserEmotionalNeeds[i] = "reassurance"
		}
		err := v.ValidateFeltExperience(e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at most 20 emotional needs")
	})

	t.Run("blank emotional need is reported", func(t *testing.T) {
		e := baseExperience()
		e.UserEmotionalNeeds = []string{"reassurance", " "}
		err := v.ValidateFeltExperience(e)
		assert.Error(t, err)
	})

	t.Run("multiple violations are collected together", func(t *testing.T) {
		e := baseExperience()
		e.ExperienceSummary = ""
		e.UserEmotionPrimary = ""
		err := v.ValidateFeltExperience(e)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "experience summary cannot be blank")
		assert.Contains(t, err.Error(), "user emotion classification cannot be blank")
	})
}
