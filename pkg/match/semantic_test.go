package match

import (
	"context"
	"errors"
	"testing"

	"tutor-match-be/internal/pkg/serverutils"
	"tutor-match-be/pkg/embedding"
)

type failingProvider struct {
	err error
}

func (p *failingProvider) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	return nil, p.err
}

func TestRetrieveClassifiesProviderFailureAsUpstream(t *testing.T) {
	provider := &failingProvider{err: errors.New("connection refused")}
	r := NewVectorRetriever(nil, provider, noopLogger{})

	_, err := r.Retrieve(context.Background(), "calculus", DefaultTopK)
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
	if serverutils.KindOf(err) != serverutils.KindUpstreamUnavailable {
		t.Errorf("error kind = %v, want upstream unavailable", serverutils.KindOf(err))
	}
	if !errors.Is(err, provider.err) {
		t.Error("cause should stay wrapped")
	}
}
