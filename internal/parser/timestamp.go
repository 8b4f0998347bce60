// Package parser turns natural language time expressions from CLI
// flags into timestamps.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/tmkelleher/fibstudy/internal/errors"
)

// ParseTimestamp parses a natural language timestamp expression such
// as "yesterday", "2 days ago", or "2026-03-01". Empty input and
// "now" mean the current time. The result is always UTC.
func ParseTimestamp(input string) (time.Time, error) {
	return ParseTimestampAt(input, time.Now())
}

// ParseTimestampAt is ParseTimestamp with an explicit reference time.
func ParseTimestampAt(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return now.UTC(), nil
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil {
		return time.Time{}, errors.NewUserErrorWithField(
			"time", input,
			"could not understand the time expression",
			"try something like 'yesterday', '3 days ago', or '2026-03-01'")
	}
	return result.Time.UTC(), nil
}
