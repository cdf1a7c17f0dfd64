package match

import (
	"context"

	"tutor-match-be/internal/pkg/logger"
	"tutor-match-be/internal/pkg/serverutils"
	"tutor-match-be/internal/repository/unitofwork"
	"tutor-match-be/pkg/embedding"

	"github.com/google/uuid"
)

// VectorRetriever embeds the skill text and queries the pgvector index.
type VectorRetriever struct {
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	minSimilarity     float64
	logger            logger.ILogger
}

func NewVectorRetriever(
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) *VectorRetriever {
	return &VectorRetriever{
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		minSimilarity:     0.35,
		logger:            log,
	}
}

// Retrieve returns (tutorId, score) pairs ordered best first. Per-chunk hits
// for the same tutor are collapsed keeping the best score.
func (r *VectorRetriever) Retrieve(ctx context.Context, skill string, topK int) ([]SemanticHit, error) {
	embeddingRes, err := r.embeddingProvider.Generate(skill, embedding.TaskRetrievalQuery)
	if err != nil {
		return nil, serverutils.NewUpstreamError("embedding generation failed", err)
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	scored, err := uow.TutorEmbeddingRepository().SearchSimilarWithScore(
		ctx,
		embeddingRes.Embedding.Values,
		topK,
		0, // keep everything, the logic threshold below decides
	)
	if err != nil {
		return nil, serverutils.NewInternalError("vector search failed", err)
	}

	var hits []SemanticHit
	seen := make(map[uuid.UUID]bool)

	for _, res := range scored {
		if res.Similarity < r.minSimilarity {
			continue
		}
		tutorId := res.Embedding.TutorId
		if seen[tutorId] {
			continue
		}
		seen[tutorId] = true
		hits = append(hits, SemanticHit{
			TutorId: tutorId,
			Score:   clampScore(res.Similarity),
		})
	}

	r.logger.Debug("VectorRetriever", "semantic retrieval done", map[string]interface{}{
		"skill": skill,
		"raw":   len(scored),
		"kept":  len(hits),
	})

	return hits, nil
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}
