package dto

import (
	"github.com/google/uuid"

	"tutor-match-be/pkg/store"
)

type SendMessageRequest struct {
	SessionId string
	Message   string `json:"message" validate:"required"`
}

type SendMessageResponse struct {
	SessionId string            `json:"session_id"`
	Reply     store.ChatMessage `json:"reply"`
	// BookingCompleted flips to true on the message that finishes a booking.
	BookingCompleted bool `json:"booking_completed"`
}

type AcceptMatchRequest struct {
	SessionId string
	TutorId   uuid.UUID `json:"tutor_id" validate:"required"`
	Day       string    `json:"day,omitempty"`
	Time      string    `json:"time,omitempty"`
	Mode      string    `json:"mode,omitempty"`
}

type AcceptMatchResponse struct {
	SessionId string            `json:"session_id"`
	Reply     store.ChatMessage `json:"reply"`
}

type ChatSessionResponse struct {
	Id              string              `json:"id"`
	Messages        []store.ChatMessage `json:"messages"`
	BookingActive   bool                `json:"booking_active"`
	AvailableTutors int                 `json:"available_tutors"`
}
