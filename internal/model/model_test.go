package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmkelleher/fibstudy/internal/uid"
)

// =============================================================================
// Subject Tests
// =============================================================================

func TestNewSubject(t *testing.T) {
	s := NewSubject("Mathematics", 2.5, 1)

	assert.False(t, s.UID.IsZero())
	assert.Equal(t, "Mathematics", s.Name)
	assert.True(t, s.Active)
	assert.Equal(t, 2.5, s.Weight)
	assert.Equal(t, 1, s.Bias)
	assert.Equal(t, KindSubject, s.Kind())
	assert.Equal(t, s.UID, s.RecordUID())
}

func TestSubjectRoundTrip(t *testing.T) {
	s := NewSubject("History", 0.75, -2)
	s.Active = false

	data, err := json.Marshal(s)
	require.NoError(t, err)

	decoded := &Subject{}
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, s, decoded)
}

func TestSubjectJSONShape(t *testing.T) {
	s := NewSubject("Physics", 1.0, 0)

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "subject", raw["type"])
	assert.Equal(t, s.UID.String(), raw["uid"])
	assert.Equal(t, "Physics", raw["name"])
	assert.Equal(t, true, raw["active"])
	assert.Equal(t, 1.0, raw["weight"])
	assert.Equal(t, 0.0, raw["bias"])
}

func TestSubjectDecodeMissingField(t *testing.T) {
	fields := []string{"uid", "name", "active", "weight", "bias"}
	full := map[string]any{
		"uid": "u1", "name": "n", "active": true, "weight": 1.5, "bias": 3,
	}

	for _, field := range fields {
		t.Run(field, func(t *testing.T) {
			partial := make(map[string]any, len(full)-1)
			for k, v := range full {
				if k != field {
					partial[k] = v
				}
			}
			data, err := json.Marshal(partial)
			require.NoError(t, err)

			err = json.Unmarshal(data, &Subject{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), field)
		})
	}
}

// =============================================================================
// Topic Tests
// =============================================================================

func TestNewTopic(t *testing.T) {
	subject := uid.New()
	before := time.Now().UTC()
	topic := NewTopic("Linear Algebra", subject, time.Time{})
	after := time.Now().UTC()

	assert.False(t, topic.UID.IsZero())
	assert.Equal(t, "Linear Algebra", topic.Name)
	assert.Equal(t, subject, topic.SubjectUID)
	assert.True(t, topic.Active)
	assert.Equal(t, DefaultFibNumber, topic.FibNumber)
	assert.Equal(t, KindTopic, topic.Kind())

	// LastStudy defaults to creation time.
	assert.False(t, topic.LastStudy.Before(before))
	assert.False(t, topic.LastStudy.After(after))
}

func TestNewTopicExplicitLastStudy(t *testing.T) {
	studied := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	topic := NewTopic("Derivatives", uid.New(), studied)
	assert.Equal(t, studied, topic.LastStudy)
}

func TestTopicRoundTrip(t *testing.T) {
	studied := time.Date(2026, 8, 24, 18, 4, 5, 123456789, time.UTC)
	topic := NewTopic("Integrals", uid.New(), studied)
	topic.FibNumber = 7

	data, err := json.Marshal(topic)
	require.NoError(t, err)

	decoded := &Topic{}
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, topic, decoded)

	// Nanosecond precision survives the round trip.
	assert.True(t, decoded.LastStudy.Equal(studied))
	assert.Equal(t, 123456789, decoded.LastStudy.Nanosecond())
}

func TestTopicDecodeMissingField(t *testing.T) {
	fields := []string{"uid", "name", "subjectUID", "active", "lastStudy", "fibNumber"}
	full := map[string]any{
		"uid": "t1", "name": "n", "subjectUID": "s1", "active": true,
		"lastStudy": "2026-08-24T18:04:05Z", "fibNumber": 2,
	}

	for _, field := range fields {
		t.Run(field, func(t *testing.T) {
			partial := make(map[string]any, len(full)-1)
			for k, v := range full {
				if k != field {
					partial[k] = v
				}
			}
			data, err := json.Marshal(partial)
			require.NoError(t, err)

			err = json.Unmarshal(data, &Topic{})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), field)
		})
	}
}

// =============================================================================
// DecodeRecord Tests
// =============================================================================

func TestDecodeRecordDispatch(t *testing.T) {
	subject := NewSubject("Chemistry", 2.5, 0)
	data, err := json.Marshal(subject)
	require.NoError(t, err)

	rec, err := DecodeRecord(data)
	require.NoError(t, err)
	require.IsType(t, &Subject{}, rec)
	assert.Equal(t, subject, rec)

	topic := NewTopic("Stoichiometry", subject.UID, time.Time{})
	data, err = json.Marshal(topic)
	require.NoError(t, err)

	rec, err = DecodeRecord(data)
	require.NoError(t, err)
	require.IsType(t, &Topic{}, rec)
	assert.Equal(t, topic.UID, rec.RecordUID())
}

func TestDecodeRecordUnknownType(t *testing.T) {
	_, err := DecodeRecord([]byte(`{"uid":"x","type":"flashcard"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRecordType)
	assert.Contains(t, err.Error(), "flashcard")
}

func TestDecodeRecordMissingType(t *testing.T) {
	_, err := DecodeRecord([]byte(`{"uid":"x","name":"n"}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
}
