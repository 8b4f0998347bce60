// Package predict computes next-review dates for topics from a
// database snapshot.
package predict

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/tmkelleher/fibstudy/internal/fib"
	"github.com/tmkelleher/fibstudy/internal/model"
	"github.com/tmkelleher/fibstudy/internal/store"
	"github.com/tmkelleher/fibstudy/internal/uid"
)

// ErrMissingReference is returned when a topic names a subject UID that
// does not resolve to a stored subject.
var ErrMissingReference = errors.New("predict: topic references unknown subject")

// Predictor derives a due date for every topic in a database snapshot.
// It reads the database and the injected Fibonacci sequence; it mutates
// neither and persists nothing.
type Predictor struct {
	db  *store.Database
	seq *fib.Sequence
}

// New creates a Predictor over the given database and sequence.
func New(db *store.Database, seq *fib.Sequence) *Predictor {
	return &Predictor{db: db, seq: seq}
}

// Predict returns a due date per topic UID. A topic's day offset is
// round(F(fibNumber)*weight + bias), rounded half away from zero
// (math.Round), and its due date is now plus that many 24-hour days.
// A topic with an unresolvable subject reference fails the whole
// prediction with ErrMissingReference: no partial result is returned.
func (p *Predictor) Predict(now time.Time) (map[uid.UID]time.Time, error) {
	type transform struct {
		weight float64
		bias   int
	}

	subjects := make(map[uid.UID]transform)
	for _, r := range p.db.Records() {
		if s, ok := r.(*model.Subject); ok {
			subjects[s.UID] = transform{weight: s.Weight, bias: s.Bias}
		}
	}

	due := make(map[uid.UID]time.Time)
	for _, r := range p.db.Records() {
		topic, ok := r.(*model.Topic)
		if !ok {
			continue
		}

		term, err := p.seq.Nth(topic.FibNumber)
		if err != nil {
			return nil, fmt.Errorf("topic %q: %w", topic.Name, err)
		}

		tr, ok := subjects[topic.SubjectUID]
		if !ok {
			return nil, fmt.Errorf("%w: topic %q -> %s",
				ErrMissingReference, topic.Name, topic.SubjectUID)
		}

		offset := int(math.Round(float64(term)*tr.weight + float64(tr.bias)))
		due[topic.UID] = now.Add(time.Duration(offset) * 24 * time.Hour)
	}
	return due, nil
}
