package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRelationalFeelings(t *testing.T) {
	t.Run("valid scales succeed", func(t *testing.T) {
		r, err := NewRelationalFeelings(5, 6.5, 10)
		require.NoError(t, err)
		assert.Equal(t, 5.0, r.ClosenessFelt())
		assert.Equal(t, 6.5, r.TrustLevelFelt())
		assert.Equal(t, 10.0, r.UnderstandingFelt())
	})

	t.Run("trust above scale fails", func(t *testing.T) {
		_, err := NewRelationalFeelings(5, 10.1, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trust_level_felt")
	})

	t.Run("negative closeness fails", func(t *testing.T) {
		_, err := NewRelationalFeelings(-1, 5, 5)
		assert.Error(t, err)
	})
}

func TestZeroRelationalFeelings(t *testing.T) {
	r := ZeroRelationalFeelings()
	assert.Equal(t, 0.0, r.ClosenessFelt())
	assert.Equal(t, 0.0, r.TrustLevelFelt())
	assert.Equal(t, 0.0, r.UnderstandingFelt())
}
