package contract

import (
	"context"

	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ScoredTutorEmbedding wraps TutorEmbedding with its similarity score
type ScoredTutorEmbedding struct {
	Embedding  *entity.TutorEmbedding
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

type TutorEmbeddingRepository interface {
	Create(ctx context.Context, embedding *entity.TutorEmbedding) error
	CreateBulk(ctx context.Context, embeddings []*entity.TutorEmbedding) error
	DeleteByTutorId(ctx context.Context, tutorId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorEmbedding, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns embeddings with cosine similarity scores,
	// filtered by threshold, ordered best first.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredTutorEmbedding, error)
}
