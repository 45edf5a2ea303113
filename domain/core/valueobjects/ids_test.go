package valueobjects

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateID(t *testing.T) {
	t.Run("new IDs are unique and non-zero", func(t *testing.T) {
		a := NewStateID()
		b := NewStateID()
		assert.False(t, a.IsZero())
		assert.False(t, a.Equals(b))
	})

	t.Run("from valid UUID string", func(t *testing.T) {
		id, err := NewStateIDFromString("550e8400-e29b-41d4-a716-446655440000")
		require.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", id.String())
	})

	t.Run("rejects empty and malformed strings", func(t *testing.T) {
		_, err := NewStateIDFromString("")
		assert.Error(t, err)

		_, err = NewStateIDFromString("not-a-uuid")
		assert.Error(t, err)
	})

	t.Run("JSON round trip", func(t *testing.T) {
		original := NewStateID()
		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded StateID
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.True(t, original.Equals(decoded))
	})
}

func TestExperienceID_FromString(t *testing.T) {
	_, err := NewExperienceIDFromString("garbage")
	assert.Error(t, err)

	id, err := NewExperienceIDFromString("550e8400-e29b-41d4-a716-446655440000")
	require.NoError(t, err)
	assert.False(t, id.IsZero())
}

func TestInteractionID_UnmarshalRejectsNonString(t *testing.T) {
	var id InteractionID
	err := json.Unmarshal([]byte(`42`), &id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "InteractionID")
}
