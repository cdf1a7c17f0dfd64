package implementation

import (
	"context"

	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/mapper"
	"tutor-match-be/internal/model"
	"tutor-match-be/internal/repository/contract"
	"tutor-match-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type TutorEmbeddingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TutorEmbeddingMapper
}

func NewTutorEmbeddingRepository(db *gorm.DB) contract.TutorEmbeddingRepository {
	return &TutorEmbeddingRepositoryImpl{
		db:     db,
		mapper: mapper.NewTutorEmbeddingMapper(),
	}
}

func (r *TutorEmbeddingRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TutorEmbeddingRepositoryImpl) Create(ctx context.Context, embedding *entity.TutorEmbedding) error {
	m := r.mapper.ToModel(embedding)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*embedding = *r.mapper.ToEntity(m)
	return nil
}

func (r *TutorEmbeddingRepositoryImpl) CreateBulk(ctx context.Context, embeddings []*entity.TutorEmbedding) error {
	models := make([]*model.TutorEmbedding, len(embeddings))
	for i, e := range embeddings {
		models[i] = r.mapper.ToModel(e)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*embeddings[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *TutorEmbeddingRepositoryImpl) DeleteByTutorId(ctx context.Context, tutorId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("tutor_id = ?", tutorId).Delete(&model.TutorEmbedding{}).Error
}

func (r *TutorEmbeddingRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.TutorEmbedding, error) {
	var models []*model.TutorEmbedding
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.TutorEmbedding, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *TutorEmbeddingRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.TutorEmbedding{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore returns embeddings with similarity scores, filtered by threshold.
// Cosine distance in pgvector is 1 - cosine_similarity, so we invert it.
func (r *TutorEmbeddingRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredTutorEmbedding, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.TutorEmbedding
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("tutor_embeddings").
		Select("tutor_embeddings.*, 1 - (embedding_value <=> ?) as similarity", queryVector).
		Joins("JOIN tutors ON tutors.id = tutor_embeddings.tutor_id").
		Where("tutor_embeddings.deleted_at IS NULL").
		Where("tutors.deleted_at IS NULL").
		Where("1 - (embedding_value <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scoredEmbeddings := make([]*contract.ScoredTutorEmbedding, len(results))
	for i, res := range results {
		scoredEmbeddings[i] = &contract.ScoredTutorEmbedding{
			Embedding:  r.mapper.ToEntity(&res.TutorEmbedding),
			Similarity: res.Similarity,
		}
	}
	return scoredEmbeddings, nil
}
