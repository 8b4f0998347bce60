package output

import (
	"time"

	"github.com/tmkelleher/fibstudy/internal/model"
	"github.com/tmkelleher/fibstudy/internal/planner"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// SubjectOutput represents a subject in JSON output.
type SubjectOutput struct {
	UID        string  `json:"uid"`
	Name       string  `json:"name"`
	Active     bool    `json:"active"`
	Weight     float64 `json:"weight"`
	Bias       int     `json:"bias"`
	TopicCount int     `json:"topic_count"`
}

// NewSubjectOutput creates a SubjectOutput from a Subject.
func NewSubjectOutput(s *model.Subject, topicCount int) *SubjectOutput {
	return &SubjectOutput{
		UID:        string(s.UID),
		Name:       s.Name,
		Active:     s.Active,
		Weight:     s.Weight,
		Bias:       s.Bias,
		TopicCount: topicCount,
	}
}

// TopicOutput represents a topic in JSON output.
type TopicOutput struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	SubjectUID string `json:"subject_uid"`
	Active     bool   `json:"active"`
	LastStudy  string `json:"last_study"`
	FibNumber  int    `json:"fib_number"`
}

// NewTopicOutput creates a TopicOutput from a Topic.
func NewTopicOutput(t *model.Topic) *TopicOutput {
	return &TopicOutput{
		UID:        string(t.UID),
		Name:       t.Name,
		SubjectUID: string(t.SubjectUID),
		Active:     t.Active,
		LastStudy:  t.LastStudy.Format(time.RFC3339),
		FibNumber:  t.FibNumber,
	}
}

// SubjectsResponse represents the subject list output in JSON.
type SubjectsResponse struct {
	Subjects []*SubjectOutput `json:"subjects"`
}

// TopicsResponse represents the topic list output in JSON.
type TopicsResponse struct {
	Subject *SubjectOutput `json:"subject"`
	Topics  []*TopicOutput `json:"topics"`
}

// ScheduleEntryOutput represents one schedule row in JSON.
type ScheduleEntryOutput struct {
	Subject  string       `json:"subject"`
	Topic    *TopicOutput `json:"topic"`
	Due      string       `json:"due"`
	DaysLeft int          `json:"days_left"`
}

// ScheduleResponse represents the schedule output in JSON.
type ScheduleResponse struct {
	GeneratedAt string                 `json:"generated_at"`
	Entries     []*ScheduleEntryOutput `json:"entries"`
}

// NewScheduleResponse creates a ScheduleResponse from schedule entries.
func NewScheduleResponse(entries []planner.Entry, now time.Time) *ScheduleResponse {
	outputs := make([]*ScheduleEntryOutput, len(entries))
	for i, e := range entries {
		outputs[i] = &ScheduleEntryOutput{
			Subject:  e.Subject.Name,
			Topic:    NewTopicOutput(e.Topic),
			Due:      e.Due.Format(time.RFC3339),
			DaysLeft: e.DaysUntil(now),
		}
	}
	return &ScheduleResponse{
		GeneratedAt: now.Format(time.RFC3339),
		Entries:     outputs,
	}
}

// CreatedResponse represents a record creation in JSON.
type CreatedResponse struct {
	Status string `json:"status"`
	Kind   string `json:"kind"`
	UID    string `json:"uid"`
}

// CompletedResponse represents a review completion in JSON.
type CompletedResponse struct {
	Status string       `json:"status"`
	Topic  *TopicOutput `json:"topic"`
	Due    string       `json:"due"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintSubjects outputs the subject list in JSON format.
func (j *JSONFormatter) PrintSubjects(subjects []*model.Subject, topicCounts map[string]int) error {
	outputs := make([]*SubjectOutput, len(subjects))
	for i, s := range subjects {
		outputs[i] = NewSubjectOutput(s, topicCounts[string(s.UID)])
	}
	return j.JSON(SubjectsResponse{Subjects: outputs})
}

// PrintTopics outputs one subject's topic list in JSON format.
func (j *JSONFormatter) PrintTopics(subject *model.Subject, topics []*model.Topic) error {
	outputs := make([]*TopicOutput, len(topics))
	for i, t := range topics {
		outputs[i] = NewTopicOutput(t)
	}
	return j.JSON(TopicsResponse{
		Subject: NewSubjectOutput(subject, len(topics)),
		Topics:  outputs,
	})
}

// PrintSchedule outputs the schedule in JSON format.
func (j *JSONFormatter) PrintSchedule(entries []planner.Entry, now time.Time) error {
	return j.JSON(NewScheduleResponse(entries, now))
}

// PrintCreated outputs a creation response in JSON format.
func (j *JSONFormatter) PrintCreated(kind model.Kind, id string) error {
	return j.JSON(CreatedResponse{Status: "created", Kind: string(kind), UID: id})
}

// PrintCompleted outputs a completion response in JSON format.
func (j *JSONFormatter) PrintCompleted(topic *model.Topic, due time.Time) error {
	return j.JSON(CompletedResponse{
		Status: "completed",
		Topic:  NewTopicOutput(topic),
		Due:    due.Format(time.RFC3339),
	})
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	resp := ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	}
	return j.JSON(resp)
}
