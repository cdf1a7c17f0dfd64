package store

import (
	"context"
	"time"

	"tutor-match-be/pkg/booking"
	"tutor-match-be/pkg/match"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one transcript entry. Match is set when the assistant
// attached a tutor candidate to the message.
type ChatMessage struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	Match     *match.Candidate `json:"match,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// ChatSession is the persisted unit of conversation and booking progress,
// keyed by an opaque identifier. Messages are append-only; only an explicit
// reset restores the initial state.
type ChatSession struct {
	Id                 string            `json:"id"`
	Messages           []ChatMessage     `json:"messages"`
	PendingMatch       *match.Candidate  `json:"pendingMatch,omitempty"`
	LastSearchCriteria *match.Request    `json:"lastSearchCriteria,omitempty"`
	AvailableTutors    []match.Candidate `json:"availableTutorsList"`
	BookingInfo        *booking.Info     `json:"bookingInfo,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	LastAccessedAt     time.Time         `json:"last_accessed_at"`
}

// NewChatSession seeds a fresh session with the greeting message.
func NewChatSession(id string, greeting string, now time.Time) *ChatSession {
	return &ChatSession{
		Id: id,
		Messages: []ChatMessage{
			{Role: RoleAssistant, Content: greeting, CreatedAt: now},
		},
		AvailableTutors: []match.Candidate{},
		CreatedAt:       now,
		LastAccessedAt:  now,
	}
}

// Append adds one transcript entry and bumps the access time.
func (s *ChatSession) Append(role, content string, candidate *match.Candidate, now time.Time) {
	s.Messages = append(s.Messages, ChatMessage{
		Role:      role,
		Content:   content,
		Match:     candidate,
		CreatedAt: now,
	})
	s.LastAccessedAt = now
}

// Reset restores the initial greeting message set and clears all search and
// booking progress. CreatedAt is preserved.
func (s *ChatSession) Reset(greeting string, now time.Time) {
	s.Messages = []ChatMessage{
		{Role: RoleAssistant, Content: greeting, CreatedAt: now},
	}
	s.PendingMatch = nil
	s.LastSearchCriteria = nil
	s.AvailableTutors = []match.Candidate{}
	s.BookingInfo = nil
	s.LastAccessedAt = now
}

// SessionRepository is the persistence contract for chat sessions. The
// backend must serialize read-modify-write cycles per session key; the
// pipeline and FSM rely on that guarantee instead of locking.
type SessionRepository interface {
	// Get returns the session for id, creating a seeded one if absent.
	Get(ctx context.Context, id string) (*ChatSession, error)
	Put(ctx context.Context, session *ChatSession) error
	// Reset reinitializes the session to its seeded state and persists it.
	Reset(ctx context.Context, id string) (*ChatSession, error)
}
