package model

import (
	"encoding/json"
	"time"

	"github.com/tmkelleher/fibstudy/internal/uid"
)

// DefaultFibNumber is the Fibonacci index assigned to new topics:
// F(2) = 1, so a fresh topic comes due after roughly one weighted day.
const DefaultFibNumber = 2

// Topic is a unit of study owned by one subject. SubjectUID is a
// non-owning reference used only for lookup. FibNumber indexes the
// Fibonacci sequence and represents the current interval strength;
// completing the topic increments it by one.
type Topic struct {
	UID        uid.UID
	Name       string
	SubjectUID uid.UID
	Active     bool
	LastStudy  time.Time
	FibNumber  int
}

// NewTopic creates an active topic with a fresh UID and the default
// Fibonacci index. A zero lastStudy means "now".
func NewTopic(name string, subject uid.UID, lastStudy time.Time) *Topic {
	if lastStudy.IsZero() {
		lastStudy = time.Now().UTC()
	}
	return &Topic{
		UID:        uid.New(),
		Name:       name,
		SubjectUID: subject,
		Active:     true,
		LastStudy:  lastStudy,
		FibNumber:  DefaultFibNumber,
	}
}

// RecordUID returns the topic's identity.
func (t *Topic) RecordUID() uid.UID { return t.UID }

// Kind returns KindTopic.
func (t *Topic) Kind() Kind { return KindTopic }

func (t *Topic) record() {}

// MarshalJSON implements json.Marshaler, including the type tag.
// LastStudy round-trips through RFC 3339 with nanoseconds.
func (t *Topic) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UID        string    `json:"uid"`
		Name       string    `json:"name"`
		SubjectUID string    `json:"subjectUID"`
		Active     bool      `json:"active"`
		LastStudy  time.Time `json:"lastStudy"`
		FibNumber  int       `json:"fibNumber"`
		Type       Kind      `json:"type"`
	}{
		UID:        t.UID.String(),
		Name:       t.Name,
		SubjectUID: t.SubjectUID.String(),
		Active:     t.Active,
		LastStudy:  t.LastStudy,
		FibNumber:  t.FibNumber,
		Type:       KindTopic,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Every field is required.
func (t *Topic) UnmarshalJSON(data []byte) error {
	var aux struct {
		UID        *string    `json:"uid"`
		Name       *string    `json:"name"`
		SubjectUID *string    `json:"subjectUID"`
		Active     *bool      `json:"active"`
		LastStudy  *time.Time `json:"lastStudy"`
		FibNumber  *int       `json:"fibNumber"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.UID == nil:
		return missingField(KindTopic, "uid")
	case aux.Name == nil:
		return missingField(KindTopic, "name")
	case aux.SubjectUID == nil:
		return missingField(KindTopic, "subjectUID")
	case aux.Active == nil:
		return missingField(KindTopic, "active")
	case aux.LastStudy == nil:
		return missingField(KindTopic, "lastStudy")
	case aux.FibNumber == nil:
		return missingField(KindTopic, "fibNumber")
	}

	t.UID = uid.Parse(*aux.UID)
	t.Name = *aux.Name
	t.SubjectUID = uid.Parse(*aux.SubjectUID)
	t.Active = *aux.Active
	t.LastStudy = *aux.LastStudy
	t.FibNumber = *aux.FibNumber
	return nil
}
