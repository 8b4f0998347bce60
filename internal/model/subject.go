package model

import (
	"encoding/json"

	"github.com/tmkelleher/fibstudy/internal/uid"
)

// Neutral transform values for subjects whose caller does not care.
const (
	DefaultWeight = 1.0
	DefaultBias   = 0
)

// Subject is a study subject. Weight and Bias form a linear transform
// applied to a topic's raw Fibonacci term when predicting its next
// review date: round(term*Weight + Bias) days. Neither value is
// range-constrained.
type Subject struct {
	UID    uid.UID
	Name   string
	Active bool
	Weight float64
	Bias   int
}

// NewSubject creates an active subject with a fresh UID.
func NewSubject(name string, weight float64, bias int) *Subject {
	return &Subject{
		UID:    uid.New(),
		Name:   name,
		Active: true,
		Weight: weight,
		Bias:   bias,
	}
}

// RecordUID returns the subject's identity.
func (s *Subject) RecordUID() uid.UID { return s.UID }

// Kind returns KindSubject.
func (s *Subject) Kind() Kind { return KindSubject }

func (s *Subject) record() {}

// MarshalJSON implements json.Marshaler, including the type tag.
func (s *Subject) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		UID    string  `json:"uid"`
		Name   string  `json:"name"`
		Active bool    `json:"active"`
		Weight float64 `json:"weight"`
		Bias   int     `json:"bias"`
		Type   Kind    `json:"type"`
	}{
		UID:    s.UID.String(),
		Name:   s.Name,
		Active: s.Active,
		Weight: s.Weight,
		Bias:   s.Bias,
		Type:   KindSubject,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Every field is required.
func (s *Subject) UnmarshalJSON(data []byte) error {
	var aux struct {
		UID    *string  `json:"uid"`
		Name   *string  `json:"name"`
		Active *bool    `json:"active"`
		Weight *float64 `json:"weight"`
		Bias   *int     `json:"bias"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.UID == nil:
		return missingField(KindSubject, "uid")
	case aux.Name == nil:
		return missingField(KindSubject, "name")
	case aux.Active == nil:
		return missingField(KindSubject, "active")
	case aux.Weight == nil:
		return missingField(KindSubject, "weight")
	case aux.Bias == nil:
		return missingField(KindSubject, "bias")
	}

	s.UID = uid.Parse(*aux.UID)
	s.Name = *aux.Name
	s.Active = *aux.Active
	s.Weight = *aux.Weight
	s.Bias = *aux.Bias
	return nil
}
