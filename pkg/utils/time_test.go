package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowRFC3339_RoundTrips(t *testing.T) {
	now := NowRFC3339()

	parsed, err := ParseRFC3339(now)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, 5*time.Second)
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParseRFC3339_RejectsGarbage(t *testing.T) {
	_, err := ParseRFC3339("yesterday afternoon")
	assert.Error(t, err)
}
