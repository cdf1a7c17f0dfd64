package mapper

import (
	"time"

	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type TutorEmbeddingMapper struct{}

func NewTutorEmbeddingMapper() *TutorEmbeddingMapper {
	return &TutorEmbeddingMapper{}
}

func (m *TutorEmbeddingMapper) ToEntity(e *model.TutorEmbedding) *entity.TutorEmbedding {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		u := e.UpdatedAt
		updatedAt = &u
	}

	return &entity.TutorEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: e.EmbeddingValue.Slice(),
		TutorId:        e.TutorId,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *TutorEmbeddingMapper) ToModel(e *entity.TutorEmbedding) *model.TutorEmbedding {
	if e == nil {
		return nil
	}

	return &model.TutorEmbedding{
		Id:             e.Id,
		Document:       e.Document,
		EmbeddingValue: pgvector.NewVector(e.EmbeddingValue),
		TutorId:        e.TutorId,
		CreatedAt:      e.CreatedAt,
	}
}
