// Package model provides domain models for the box picker service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogEntry is a persisted log document. Request-scoped fields are optional;
// anything without a dedicated column goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	Level      string             `bson:"level" json:"level"`
	Message    string             `bson:"message" json:"message"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string             `bson:"method,omitempty" json:"method,omitempty"`
	Path       string             `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string             `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string             `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string             `bson:"error,omitempty" json:"error,omitempty"`

	// Audit trail: who performed which action ("pack", "update_box_catalog").
	Subject    string `bson:"subject,omitempty" json:"subject,omitempty"`
	ActionType string `bson:"action_type,omitempty" json:"action_type,omitempty"`

	Fields map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

func (e *LogEntry) ensureFields() map[string]interface{} {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	return e.Fields
}

// WithField stores one extra field on the entry and returns it for chaining.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	e.ensureFields()[key] = value
	return e
}

// WithFields merges fields into the entry and returns it for chaining.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	dst := e.ensureFields()
	for k, v := range fields {
		dst[k] = v
	}
	return e
}

// LogQueryOptions filters and pages log queries. Zero values mean "no filter".
type LogQueryOptions struct {
	RequestID string
	Level     string
	Method    string
	Path      string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}
