// Package events provides types to identify the lifecycle of a stageflow
// run, and mechanisms to forward them to interested parties.
package events

import (
	"encoding/json"
	"fmt"
)

// Event is an interface that describes pipeline lifecycle events, used both
// in logs and in structured event delivery.
type Event interface {
	Emit() ([]byte, error)
	String() string
}

// BootEvent is sent when a pipeline run starts.
type BootEvent struct {
	Ts        int64             `json:"ts"`
	Kind      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}

// NewBootEvent creates a new BootEvent.
func NewBootEvent(ts int64, version string, endpoints map[string]string) *BootEvent {
	return &BootEvent{
		Ts:        ts,
		Kind:      "boot",
		Version:   version,
		Endpoints: endpoints,
	}
}

// Emit prepares the event to be emitted, and marshals it into a JSON.
func (e *BootEvent) Emit() ([]byte, error) {
	return json.Marshal(e)
}

func (e *BootEvent) String() string {
	return fmt.Sprintf("%s %v", e.Kind, e.Endpoints)
}

// ExitEvent is sent when a pipeline run terminates.
type ExitEvent struct {
	Ts        int64             `json:"ts"`
	Kind      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}

// NewExitEvent creates a new ExitEvent.
func NewExitEvent(ts int64, version string, endpoints map[string]string) *ExitEvent {
	return &ExitEvent{
		Ts:        ts,
		Kind:      "exit",
		Version:   version,
		Endpoints: endpoints,
	}
}

// Emit prepares the event to be emitted, and marshals it into a JSON.
func (e *ExitEvent) Emit() ([]byte, error) {
	return json.Marshal(e)
}

func (e *ExitEvent) String() string {
	return fmt.Sprintf("%s %v", e.Kind, e.Endpoints)
}

// MetricsEvent carries the record counts of a single node at a point in
// time.
type MetricsEvent struct {
	Ts   int64  `json:"ts"`
	Kind string `json:"name"`

	// Path is the node path in the form of parent/child
	Path string `json:"path"`

	// Records is the number of records that have traversed this node
	Records int `json:"records"`
}

// NewMetricsEvent creates a new MetricsEvent.
func NewMetricsEvent(ts int64, path string, records int) *MetricsEvent {
	return &MetricsEvent{
		Ts:      ts,
		Kind:    "metrics",
		Path:    path,
		Records: records,
	}
}

// Emit prepares the event to be emitted, and marshals it into a JSON.
func (e *MetricsEvent) Emit() ([]byte, error) {
	return json.Marshal(e)
}

func (e *MetricsEvent) String() string {
	return fmt.Sprintf("%s %s records: %d", e.Kind, e.Path, e.Records)
}

// ErrorEvent is sent when a stage reports a record-scoped failure.
type ErrorEvent struct {
	Ts   int64  `json:"ts"`
	Kind string `json:"name"`
	Path string `json:"path"`

	// Record is the offending record
	Record interface{} `json:"record,omitempty"`

	// Message is the error message as a string
	Message string `json:"message,omitempty"`
}

// NewErrorEvent creates a new ErrorEvent.
func NewErrorEvent(ts int64, path string, record interface{}, message string) *ErrorEvent {
	return &ErrorEvent{
		Ts:      ts,
		Kind:    "error",
		Path:    path,
		Record:  record,
		Message: message,
	}
}

// Emit prepares the event to be emitted, and marshals it into a JSON.
func (e *ErrorEvent) Emit() ([]byte, error) {
	return json.Marshal(e)
}

func (e *ErrorEvent) String() string {
	return fmt.Sprintf("%s record: %v, message: %s", e.Kind, e.Record, e.Message)
}
