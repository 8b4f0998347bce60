package predict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmkelleher/fibstudy/internal/fib"
	"github.com/tmkelleher/fibstudy/internal/model"
	"github.com/tmkelleher/fibstudy/internal/store"
	"github.com/tmkelleher/fibstudy/internal/uid"
)

var testNow = time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}

func buildDB(t *testing.T, records ...model.Record) *store.Database {
	t.Helper()
	db := store.New()
	for _, r := range records {
		require.NoError(t, db.Insert(r))
	}
	return db
}

func TestPredictDefaultTopic(t *testing.T) {
	// F(2) = 1, weight 2.5, bias 0 -> round(2.5) = 3 days.
	subject := model.NewSubject("Math", 2.5, 0)
	topic := model.NewTopic("Algebra", subject.UID, testNow)

	p := New(buildDB(t, subject, topic), fib.New())
	due, err := p.Predict(testNow)
	require.NoError(t, err)

	require.Len(t, due, 1)
	assert.Equal(t, testNow.Add(days(3)), due[topic.UID])
}

func TestPredictWeightAndBias(t *testing.T) {
	// F(5) = 5, weight 1.0, bias 5 -> round(10) = 10 days.
	subject := model.NewSubject("History", 1.0, 5)
	topic := model.NewTopic("Rome", subject.UID, testNow)
	topic.FibNumber = 5

	p := New(buildDB(t, subject, topic), fib.New())
	due, err := p.Predict(testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(days(10)), due[topic.UID])
}

func TestPredictRoundsHalfAwayFromZero(t *testing.T) {
	// F(4) = 3, weight 0.5 -> 1.5 rounds up to 2.
	up := model.NewSubject("Up", 0.5, 0)
	upTopic := model.NewTopic("u", up.UID, testNow)
	upTopic.FibNumber = 4

	// F(4) = 3, weight -0.5 -> -1.5 rounds away from zero to -2.
	down := model.NewSubject("Down", -0.5, 0)
	downTopic := model.NewTopic("d", down.UID, testNow)
	downTopic.FibNumber = 4

	p := New(buildDB(t, up, upTopic, down, downTopic), fib.New())
	due, err := p.Predict(testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(days(2)), due[upTopic.UID])
	assert.Equal(t, testNow.Add(days(-2)), due[downTopic.UID])
}

func TestPredictAllTopics(t *testing.T) {
	subject := model.NewSubject("Math", 1.0, 0)
	db := buildDB(t, subject)

	topics := make([]*model.Topic, 0, 4)
	for i, name := range []string{"a", "b", "c", "d"} {
		topic := model.NewTopic(name, subject.UID, testNow)
		topic.FibNumber = i + 1
		require.NoError(t, db.Insert(topic))
		topics = append(topics, topic)
	}

	due, err := New(db, fib.New()).Predict(testNow)
	require.NoError(t, err)
	require.Len(t, due, 4)

	// F(1..4) = 1, 1, 2, 3 with a neutral transform.
	for i, offset := range []int{1, 1, 2, 3} {
		assert.Equal(t, testNow.Add(days(offset)), due[topics[i].UID])
	}
}

func TestPredictMissingReference(t *testing.T) {
	subject := model.NewSubject("Math", 1.0, 0)
	good := model.NewTopic("Algebra", subject.UID, testNow)
	orphan := model.NewTopic("Orphan", uid.Parse("gone"), testNow)

	p := New(buildDB(t, subject, good, orphan), fib.New())
	due, err := p.Predict(testNow)

	// No partial results.
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingReference)
	assert.Contains(t, err.Error(), "Orphan")
	assert.Nil(t, due)
}

func TestPredictInvalidFibNumber(t *testing.T) {
	subject := model.NewSubject("Math", 1.0, 0)
	topic := model.NewTopic("Broken", subject.UID, testNow)
	topic.FibNumber = 0

	_, err := New(buildDB(t, subject, topic), fib.New()).Predict(testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, fib.ErrInvalidIndex)
}

func TestPredictReadOnly(t *testing.T) {
	subject := model.NewSubject("Math", 1.0, 0)
	topic := model.NewTopic("Algebra", subject.UID, testNow)
	db := buildDB(t, subject, topic)

	before := topic.FibNumber
	_, err := New(db, fib.New()).Predict(testNow)
	require.NoError(t, err)

	assert.Equal(t, before, topic.FibNumber)
	assert.Equal(t, 2, db.Len())
}
