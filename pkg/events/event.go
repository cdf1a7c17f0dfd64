package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "BOOKING_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const TypeBookingCompleted = "BOOKING_COMPLETED"

// NewBookingCompletedEvent is emitted once a booking conversation finishes.
func NewBookingCompletedEvent(tutorId uuid.UUID, tutorName, studentEmail, day, timeRange, schedulingLink string) Event {
	return BaseEvent{
		Type: TypeBookingCompleted,
		Data: map[string]interface{}{
			"tutor_id":        tutorId.String(),
			"tutor_name":      tutorName,
			"student_email":   studentEmail,
			"day":             day,
			"time":            timeRange,
			"scheduling_link": schedulingLink,
		},
		OccurredAt: time.Now(),
	}
}
