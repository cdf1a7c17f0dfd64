package match

import (
	"context"

	"tutor-match-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// DefaultTopK bounds the semantic retrieval result set.
const DefaultTopK = 10

// strategy is one entry in the ordered fallback chain. Each returns a
// candidate pool or empty; errors are treated as empty by the fold.
type strategy struct {
	name  string
	fetch func(ctx context.Context, req *Request) ([]Candidate, error)
}

// Pipeline runs normalization, the fallback chain, and ranking.
type Pipeline struct {
	retriever Retriever
	source    TutorSource
	matcher   *KeywordMatcher
	ranker    *Ranker
	topK      int
	logger    logger.ILogger
}

func NewPipeline(retriever Retriever, source TutorSource, log logger.ILogger) *Pipeline {
	return &Pipeline{
		retriever: retriever,
		source:    source,
		matcher:   NewKeywordMatcher(source),
		ranker:    NewRanker(),
		topK:      DefaultTopK,
		logger:    log,
	}
}

// Match resolves a request into a ranked candidate list. The result is
// empty only when no tutor matched the skill through any channel; upstream
// failures degrade to the next strategy instead of surfacing.
func (p *Pipeline) Match(ctx context.Context, req *Request) ([]Candidate, error) {
	norm, err := Normalize(req)
	if err != nil {
		return nil, err
	}

	for _, s := range p.strategies() {
		pool, err := s.fetch(ctx, norm)
		if err != nil {
			p.logger.Warn("MatchPipeline", "strategy failed, falling back", map[string]interface{}{
				"strategy": s.name,
				"error":    err.Error(),
			})
			continue
		}
		if len(pool) == 0 {
			continue
		}

		ranked := p.ranker.Rank(norm, pool)
		p.logger.Info("MatchPipeline", "match resolved", map[string]interface{}{
			"strategy":   s.name,
			"skill":      norm.Skill,
			"candidates": len(ranked),
		})
		return ranked, nil
	}

	p.logger.Info("MatchPipeline", "no tutors matched", map[string]interface{}{"skill": norm.Skill})
	return []Candidate{}, nil
}

func (p *Pipeline) strategies() []strategy {
	return []strategy{
		{name: "semantic", fetch: p.fetchSemantic},
		{name: "keyword", fetch: p.fetchKeywordFiltered},
		{name: "keyword-skill-only", fetch: p.fetchKeywordAll},
	}
}

// fetchSemantic embeds the skill and queries the vector index, then enriches
// the hit set with keyword matches so both sources are unioned. Empty when
// the index knows nothing about the skill.
func (p *Pipeline) fetchSemantic(ctx context.Context, req *Request) ([]Candidate, error) {
	hits, err := p.retriever.Retrieve(ctx, req.Skill, p.topK)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(hits))
	for i, h := range hits {
		ids[i] = h.TutorId
	}

	tutors, err := p.source.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	byId := make(map[uuid.UUID]int, len(tutors))
	for i, t := range tutors {
		byId[t.Id] = i
	}

	semantic := make([]Candidate, 0, len(hits))
	for _, h := range hits {
		idx, ok := byId[h.TutorId]
		if !ok {
			// embedding row without a live roster entry
			continue
		}
		semantic = append(semantic, Candidate{
			Tutor:     tutors[idx],
			Score:     h.Score,
			Reasoning: ReasoningSemantic,
		})
	}
	if len(semantic) == 0 {
		return nil, nil
	}

	keyword, err := p.source.FindByKeyword(ctx, req.Skill)
	if err != nil {
		p.logger.Warn("MatchPipeline", "keyword enrichment failed", map[string]interface{}{
			"error": err.Error(),
		})
		keyword = nil
	}

	return p.ranker.Merge(semantic, keyword), nil
}

func (p *Pipeline) fetchKeywordFiltered(ctx context.Context, req *Request) ([]Candidate, error) {
	tutors, err := p.matcher.Match(ctx, req, true)
	if err != nil {
		return nil, err
	}
	return p.ranker.Merge(nil, tutors), nil
}

func (p *Pipeline) fetchKeywordAll(ctx context.Context, req *Request) ([]Candidate, error) {
	tutors, err := p.matcher.Match(ctx, req, false)
	if err != nil {
		return nil, err
	}
	return p.ranker.Merge(nil, tutors), nil
}
