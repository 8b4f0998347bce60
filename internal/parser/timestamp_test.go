package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmkelleher/fibstudy/internal/errors"
)

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func TestParseTimestampEmptyMeansNow(t *testing.T) {
	for _, input := range []string{"", "  ", "now", "NOW"} {
		got, err := ParseTimestampAt(input, testNow)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, testNow, got)
	}
}

func TestParseTimestampAbsolute(t *testing.T) {
	got, err := ParseTimestampAt("2026-03-01", testNow)
	require.NoError(t, err)
	assert.Equal(t, 2026, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParseTimestampRelative(t *testing.T) {
	got, err := ParseTimestampAt("2 days ago", testNow)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Day())
}

func TestParseTimestampReturnsUTC(t *testing.T) {
	got, err := ParseTimestampAt("yesterday", testNow)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseTimestampInvalid(t *testing.T) {
	_, err := ParseTimestampAt("not a time at all xyz", testNow)
	require.Error(t, err)
	assert.True(t, errors.IsUserError(err))
}
