package valueobjects

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "feelingmachine-backend/pkg/errors"
)

func TestNewEmotionalDimension(t *testing.T) {
	t.Run("boundary values succeed", func(t *testing.T) {
		d, err := NewEmotionalDimension(1.0, -1.0, 0.0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, d.Valence())
		assert.Equal(t, -1.0, d.Arousal())
		assert.Equal(t, 0.0, d.Dominance())
	})

	t.Run("valence above 1 fails", func(t *testing.T) {
		_, err := NewEmotionalDimension(1.5, 0, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "valence")
		assert.True(t, errors.Is(err, pkgerrors.ErrDimensionOutOfRange))
	})

	t.Run("arousal below -1 fails", func(t *testing.T) {
		_, err := NewEmotionalDimension(0, -1.01, 0)
		assert.Error(t, err)
	})

	t.Run("dominance above 1 fails", func(t *testing.T) {
		_, err := NewEmotionalDimension(0, 0, 2)
		assert.Error(t, err)
	})
}

func TestEmotionalDimension_Equals(t *testing.T) {
	a, err := NewEmotionalDimension(0.5, -0.2, 0.9)
	require.NoError(t, err)
	b, err := NewEmotionalDimension(0.5, -0.2, 0.9)
	require.NoError(t, err)
	c, err := NewEmotionalDimension(0.5, -0.2, 0.8)
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}
