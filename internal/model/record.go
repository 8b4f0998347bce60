// Package model defines the persisted record types for fibstudy.
package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tmkelleher/fibstudy/internal/uid"
)

// Decode errors. Decoding is strict: a missing required field or an
// unrecognized type tag is a failure, never a silent default.
var (
	// ErrUnknownRecordType is returned when a record's type tag is not
	// one of the known kinds.
	ErrUnknownRecordType = errors.New("model: unknown record type")
	// ErrMissingField is returned when a required field is absent from
	// a record's JSON encoding.
	ErrMissingField = errors.New("model: missing required field")
)

// Kind discriminates the closed set of record variants. It is persisted
// as the "type" field of every record's JSON encoding and drives decode
// dispatch.
type Kind string

const (
	KindSubject Kind = "subject"
	KindTopic   Kind = "topic"
)

// Record is the interface shared by every stored entity. The set of
// implementations is closed: Subject and Topic only.
type Record interface {
	// RecordUID returns the record's identity, used as the store key.
	RecordUID() uid.UID
	// Kind tags the variant for decode dispatch.
	Kind() Kind

	// record keeps the implementing set closed to this package.
	record()
}

// DecodeRecord decodes a single record from its JSON encoding,
// dispatching on the "type" tag.
func DecodeRecord(data []byte) (Record, error) {
	var tag struct {
		Type *Kind `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}
	if tag.Type == nil {
		return nil, fmt.Errorf("%w: type", ErrMissingField)
	}

	switch *tag.Type {
	case KindSubject:
		s := &Subject{}
		if err := json.Unmarshal(data, s); err != nil {
			return nil, err
		}
		return s, nil
	case KindTopic:
		t := &Topic{}
		if err := json.Unmarshal(data, t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, *tag.Type)
	}
}

// missingField builds an ErrMissingField for one field of one kind.
func missingField(kind Kind, field string) error {
	return fmt.Errorf("%w: %s.%s", ErrMissingField, kind, field)
}
