package match

import (
	"context"

	"tutor-match-be/internal/entity"

	"github.com/google/uuid"
)

// Candidate reasoning strings surfaced to the client.
const (
	ReasoningSemantic = "semantic similarity"
	ReasoningKeyword  = "keyword/availability match"
)

// DefaultKeywordScore is assigned to tutors found only through keyword search.
const DefaultKeywordScore = 0.5

// Request is a normalized tutor search. Skill is mandatory; day, time and
// mode are optional availability filters.
type Request struct {
	Skill string `json:"skill"`
	Day   string `json:"day,omitempty"`
	Time  string `json:"time,omitempty"`
	Mode  string `json:"mode,omitempty"`
}

// Candidate is a tutor plus its relevance to a specific request.
type Candidate struct {
	Tutor          *entity.Tutor `json:"tutor"`
	Score          float64       `json:"matchScore"`
	Reasoning      string        `json:"reasoning"`
	AvailableSlots []entity.Slot `json:"availableSlots"`
}

// SemanticHit is one vector-index result.
type SemanticHit struct {
	TutorId uuid.UUID
	Score   float64
}

// Retriever is the embed-and-search collaborator of the pipeline.
type Retriever interface {
	Retrieve(ctx context.Context, skill string, topK int) ([]SemanticHit, error)
}

// TutorSource exposes the roster reads the pipeline needs.
type TutorSource interface {
	FindByKeyword(ctx context.Context, keyword string) ([]*entity.Tutor, error)
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Tutor, error)
}
