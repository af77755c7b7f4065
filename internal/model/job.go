package model

import (
	"encoding/json"
	"time"
)

// JobKind selects which analysis an async job runs.
type JobKind string

const (
	JobVideo   JobKind = "video"
	JobChannel JobKind = "channel"
	JobSimilar JobKind = "similar"
)

// JobStatus is the lifecycle state of an async job.
type JobStatus string

const (
	JobQueued  JobStatus = "queued"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// Job is an analysis request processed by the background job worker.
type Job struct {
	ID        string          `json:"job_id"`
	Kind      JobKind         `json:"kind"`
	Target    string          `json:"target"`
	Status    JobStatus       `json:"status"`
	Error     string          `json:"error,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TextAnalysis is the classifier output for a single piece of free text.
type TextAnalysis struct {
	Text         string       `json:"text"`
	Sentiment    Sentiment    `json:"sentiment"`
	Compound     float64      `json:"compound"`
	Sarcasm      Sarcasm      `json:"sarcasm"`
	SarcasmScore int          `json:"sarcasm_score"`
	Category     Category     `json:"category"`
	IsQuestion   bool         `json:"is_question"`
	QuestionType QuestionType `json:"question_type,omitempty"`
	IsEnglish    bool         `json:"is_english"`
}
