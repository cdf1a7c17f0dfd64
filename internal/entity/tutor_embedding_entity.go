package entity

import (
	"time"

	"github.com/google/uuid"
)

type TutorEmbedding struct {
	Id             uuid.UUID
	Document       string
	EmbeddingValue []float32
	TutorId        uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
