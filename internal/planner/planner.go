// Package planner exposes the study-planning operations consumed by
// the CLI front end: subject and topic creation, completion, listing,
// and prediction.
package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/tmkelleher/fibstudy/internal/fib"
	"github.com/tmkelleher/fibstudy/internal/logging"
	"github.com/tmkelleher/fibstudy/internal/model"
	"github.com/tmkelleher/fibstudy/internal/predict"
	"github.com/tmkelleher/fibstudy/internal/store"
	"github.com/tmkelleher/fibstudy/internal/uid"
	"github.com/tmkelleher/fibstudy/internal/validate"
)

// Planner wraps a database and the process's Fibonacci sequence with
// the operations the front end needs. It performs no file I/O; the
// runtime context persists the database when the process ends.
type Planner struct {
	db  *store.Database
	seq *fib.Sequence
}

// New creates a Planner over the given database and sequence.
func New(db *store.Database, seq *fib.Sequence) *Planner {
	return &Planner{db: db, seq: seq}
}

// DB returns the underlying database.
func (p *Planner) DB() *store.Database {
	return p.db
}

// CreateSubject inserts a new active subject and returns its UID.
func (p *Planner) CreateSubject(name string, weight float64, bias int) (uid.UID, error) {
	if err := validate.SubjectName(name); err != nil {
		return "", err
	}
	if err := validate.Weight(weight); err != nil {
		return "", err
	}

	subject := model.NewSubject(name, weight, bias)
	if err := p.db.Insert(subject); err != nil {
		return "", err
	}

	logging.Logger().Debug("subject created",
		logging.KeySubject, name, logging.KeyUID, subject.UID.String())
	return subject.UID, nil
}

// CreateTopic inserts a new active topic owned by the given subject
// and returns its UID. The subject reference is validated eagerly:
// an unknown subject UID is rejected here with ErrMissingReference
// rather than failing prediction later. A zero lastStudy means "now".
func (p *Planner) CreateTopic(name string, subject uid.UID, lastStudy time.Time) (uid.UID, error) {
	if err := validate.TopicName(name); err != nil {
		return "", err
	}
	if _, err := p.Subject(subject); err != nil {
		return "", err
	}

	topic := model.NewTopic(name, subject, lastStudy)
	if err := p.db.Insert(topic); err != nil {
		return "", err
	}

	logging.Logger().Debug("topic created",
		logging.KeyTopic, name, logging.KeyUID, topic.UID.String())
	return topic.UID, nil
}

// CompleteTopic records one completed review: the topic's Fibonacci
// index increments by exactly one, lengthening its next interval.
func (p *Planner) CompleteTopic(id uid.UID) error {
	return p.complete(id, time.Time{})
}

// CompleteTopicAt additionally records when the review happened.
func (p *Planner) CompleteTopicAt(id uid.UID, studied time.Time) error {
	return p.complete(id, studied)
}

func (p *Planner) complete(id uid.UID, studied time.Time) error {
	topic, err := p.Topic(id)
	if err != nil {
		return err
	}

	updated := *topic
	updated.FibNumber++
	if !studied.IsZero() {
		updated.LastStudy = studied.UTC()
	}
	if err := p.db.Update(&updated); err != nil {
		return err
	}

	logging.Logger().Debug("topic completed",
		logging.KeyTopic, updated.Name, "fib_number", updated.FibNumber)
	return nil
}

// Subject resolves a UID to a stored subject.
func (p *Planner) Subject(id uid.UID) (*model.Subject, error) {
	rec, err := p.db.Get(id)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %s", predict.ErrMissingReference, id)
	}
	subject, ok := rec.(*model.Subject)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a subject", predict.ErrMissingReference, id)
	}
	return subject, nil
}

// Topic resolves a UID to a stored topic.
func (p *Planner) Topic(id uid.UID) (*model.Topic, error) {
	rec, err := p.db.Get(id)
	if err != nil {
		return nil, err
	}
	topic, ok := rec.(*model.Topic)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a topic", store.ErrNotFound, id)
	}
	return topic, nil
}

// SubjectByName resolves a subject by exact name. Names are not unique
// keys; the first match in insertion order wins, mirroring name lookup
// in the interactive front end.
func (p *Planner) SubjectByName(name string) (*model.Subject, error) {
	for _, rec := range p.db.Query([]model.Kind{model.KindSubject}, nil).Records() {
		if subject := rec.(*model.Subject); subject.Name == name {
			return subject, nil
		}
	}
	return nil, fmt.Errorf("%w: subject %q", store.ErrNotFound, name)
}

// TopicByName resolves a topic of one subject by exact name.
func (p *Planner) TopicByName(subject uid.UID, name string) (*model.Topic, error) {
	for _, topic := range p.ListTopicsForSubject(subject) {
		if topic.Name == name {
			return topic, nil
		}
	}
	return nil, fmt.Errorf("%w: topic %q", store.ErrNotFound, name)
}

// ListSubjects returns all subjects in insertion order.
func (p *Planner) ListSubjects() []*model.Subject {
	records := p.db.Query([]model.Kind{model.KindSubject}, nil).Records()
	subjects := make([]*model.Subject, len(records))
	for i, rec := range records {
		subjects[i] = rec.(*model.Subject)
	}
	return subjects
}

// ListTopics returns all topics in insertion order.
func (p *Planner) ListTopics() []*model.Topic {
	return p.listTopics(nil)
}

// ListTopicsForSubject returns the topics referencing one subject.
func (p *Planner) ListTopicsForSubject(subject uid.UID) []*model.Topic {
	return p.listTopics(func(r model.Record) bool {
		return r.(*model.Topic).SubjectUID == subject
	})
}

func (p *Planner) listTopics(pred func(model.Record) bool) []*model.Topic {
	records := p.db.Query([]model.Kind{model.KindTopic}, pred).Records()
	topics := make([]*model.Topic, len(records))
	for i, rec := range records {
		topics[i] = rec.(*model.Topic)
	}
	return topics
}

// PredictAll computes the due date for every topic, keyed by topic UID.
func (p *Planner) PredictAll() (map[uid.UID]time.Time, error) {
	return predict.New(p.db, p.seq).Predict(time.Now().UTC())
}

// Entry pairs a topic with its owning subject and predicted due date
// for display.
type Entry struct {
	Topic   *model.Topic
	Subject *model.Subject
	Due     time.Time
}

// DaysUntil returns the whole number of 24-hour days between now and
// the entry's due date, negative when overdue.
func (e Entry) DaysUntil(now time.Time) int {
	return int(e.Due.Sub(now).Hours() / 24)
}

// Schedule computes the full review schedule as of now, sorted by due
// date and then topic name.
func (p *Planner) Schedule(now time.Time) ([]Entry, error) {
	due, err := predict.New(p.db, p.seq).Predict(now)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(due))
	for _, topic := range p.ListTopics() {
		subject, err := p.Subject(topic.SubjectUID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Topic: topic, Subject: subject, Due: due[topic.UID]})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Due.Equal(entries[j].Due) {
			return entries[i].Due.Before(entries[j].Due)
		}
		return entries[i].Topic.Name < entries[j].Topic.Name
	})
	return entries, nil
}
