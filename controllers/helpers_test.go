package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDateAnchorsToConfiguredZone(t *testing.T) {
	utcMinus5 := time.FixedZone("UTC-5", -5*60*60)

	parsed, err := parseLocalDate("2026-03-10", utcMinus5)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, utcMinus5), parsed)

	// The instant is 05:00 UTC, still 10 Mar in the local calendar. A UTC
	// anchor would land on 9 Mar 19:00 local and shift every day window.
	assert.True(t, parsed.Equal(time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC)))
	assert.Equal(t, 10, parsed.Day())
}

func TestParseLocalDateRejectsMalformedInput(t *testing.T) {
	utcMinus5 := time.FixedZone("UTC-5", -5*60*60)

	for _, raw := range []string{"10-03-2026", "2026/03/10", "yesterday", ""} {
		_, err := parseLocalDate(raw, utcMinus5)
		assert.Error(t, err, raw)
	}
}
