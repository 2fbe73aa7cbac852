package models

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// SubmissionResponse wraps a successful result returned by the JSON API
type SubmissionResponse struct {
	Service      string  `json:"service"`
	SubmissionID string  `json:"submission_id"`
	DurationMS   int64   `json:"duration_ms"`
	Result       Result  `json:"result"`
	Mocked       bool    `json:"mocked"`
	Changes      *Change `json:"changes,omitempty"`
}

// Change summarizes how far a service moved the submitted text
type Change struct {
	EditDistance  int     `json:"edit_distance"`
	WordErrorRate float64 `json:"word_error_rate"`
	WordsBefore   int     `json:"words_before"`
	WordsAfter    int     `json:"words_after"`
}

// FieldInfo describes one input of a service form
type FieldInfo struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

// ServiceInfo is the catalog entry exposed by GET /api/v1/services
type ServiceInfo struct {
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Endpoint    string      `json:"endpoint"`
	Mocked      bool        `json:"mocked"`
	Fields      []FieldInfo `json:"fields"`
}

// HistoryEntry is one recorded submission
type HistoryEntry struct {
	SubmissionID string    `json:"submission_id"`
	Service      string    `json:"service"`
	Lang         string    `json:"lang"`
	Status       string    `json:"status"`
	ErrorType    string    `json:"error_type,omitempty"`
	DurationMS   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}
