// Package validate provides input validation helpers for the fibstudy CLI.
package validate

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tmkelleher/fibstudy/internal/errors"
)

const (
	// MaxNameLength is the maximum length for subject and topic names.
	MaxNameLength = 128
)

// SubjectName validates a subject name.
func SubjectName(name string) error {
	return recordName("subject", name)
}

// TopicName validates a topic name.
func TopicName(name string) error {
	return recordName("topic", name)
}

func recordName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewUserError(
			kind+" name cannot be empty",
			"Provide a "+kind+" name")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return errors.NewUserErrorWithField(kind, name,
			kind+" name too long",
			"Names must be 128 characters or fewer")
	}
	return nil
}

// Weight validates a subject weight. Any finite value is allowed; the
// transform is deliberately unconstrained beyond that.
func Weight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return errors.NewUserError(
			"weight must be a finite number",
			"Use a value like 1.0 or 2.5")
	}
	return nil
}

// NonEmpty validates that a string is not blank.
func NonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserError(
			field+" cannot be empty",
			"Provide a value for "+field)
	}
	return nil
}
