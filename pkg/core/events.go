package core

import "fmt"

// EventType represents the kind of change observed inside the control
// directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to an entry of the control directory, as seen
// by Watch. Path is relative to the control root and slash-separated.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and thereby lifecycle.Event, so events
// can flow into a lifecycle runtime unchanged).
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
