// Package audit provides audit logging for configuration changes.
package audit

import (
	"fmt"
	"time"
)

// Event represents an auditable configuration change event
type Event struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	User      string            `json:"user"`
	Operation string            `json:"operation"`
	Device    string            `json:"device,omitempty"`
	Arguments map[string]string `json:"arguments,omitempty"`
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Executed  bool              `json:"executed"` // true if artifacts were written (-x)
}

// NewEvent creates a new audit event
func NewEvent(user, operation, device string) *Event {
	return &Event{
		ID:        generateID(),
		Timestamp: time.Now(),
		User:      user,
		Operation: operation,
		Device:    device,
	}
}

// WithArguments sets the operation arguments
func (e *Event) WithArguments(args map[string]string) *Event {
	e.Arguments = args
	return e
}

// WithSuccess marks the event as successful
func (e *Event) WithSuccess() *Event {
	e.Success = true
	return e
}

// WithError marks the event as failed
func (e *Event) WithError(err error) *Event {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithExecuted marks whether artifacts were written
func (e *Event) WithExecuted(executed bool) *Event {
	e.Executed = executed
	return e
}

func generateID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
