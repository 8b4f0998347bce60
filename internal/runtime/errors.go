package runtime

import (
	"errors"
	"fmt"

	apperrors "github.com/tmkelleher/fibstudy/internal/errors"
	"github.com/tmkelleher/fibstudy/internal/fib"
	"github.com/tmkelleher/fibstudy/internal/predict"
	"github.com/tmkelleher/fibstudy/internal/store"
)

// Common errors.
var (
	ErrSubjectRequired  = errors.New("subject is required")
	ErrTopicRequired    = errors.New("topic is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Suggestions provides helpful suggestions for common errors.
var Suggestions = map[error]string{
	ErrSubjectRequired:          "Specify a subject with --subject <name>.",
	ErrTopicRequired:            "Specify a topic as the first argument.",
	ErrNameRequired:             "Provide a name as the first argument.",
	ErrInvalidTimestamp:         "Try formats like 'yesterday', '3 days ago', or '2026-03-01'.",
	store.ErrNotFound:           "Use 'fibstudy subject list' to see what exists.",
	store.ErrDuplicateKey:       "This record already exists.",
	predict.ErrMissingReference: "Use 'fibstudy subject list' to see available subjects.",
	fib.ErrInvalidIndex:         "Interval indices start at 1.",
}

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	var ue *apperrors.UserError
	if errors.As(err, &ue) && ue.Suggestion != "" {
		return ue.Suggestion
	}
	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}
	return ""
}

// FormatError formats an error with optional suggestion.
func FormatError(err error) string {
	msg := err.Error()
	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}

// IsUsageError reports whether the error stems from user input rather
// than the environment, so the CLI can skip printing command usage on
// system failures.
func IsUsageError(err error) bool {
	if apperrors.IsUserError(err) {
		return true
	}
	for _, sentinel := range []error{
		ErrSubjectRequired, ErrTopicRequired, ErrNameRequired,
		ErrInvalidTimestamp, store.ErrNotFound, predict.ErrMissingReference,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// WrapLoadError adds path context to database load failures.
func WrapLoadError(err error, path string) error {
	if err == nil {
		return nil
	}
	return apperrors.NewSystemErrorWithOp("load", fmt.Sprintf("cannot read data file %s", path), err)
}
