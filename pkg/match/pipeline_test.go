package match

import (
	"context"
	"errors"
	"testing"

	"tutor-match-be/internal/entity"

	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type fakeRetriever struct {
	hits []SemanticHit
	err  error
}

func (f *fakeRetriever) Retrieve(ctx context.Context, skill string, topK int) ([]SemanticHit, error) {
	return f.hits, f.err
}

type fakeSource struct {
	tutors     []*entity.Tutor
	keywordErr error
}

func (f *fakeSource) FindByKeyword(ctx context.Context, keyword string) ([]*entity.Tutor, error) {
	if f.keywordErr != nil {
		return nil, f.keywordErr
	}
	return f.tutors, nil
}

func (f *fakeSource) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Tutor, error) {
	var out []*entity.Tutor
	for _, t := range f.tutors {
		for _, id := range ids {
			if t.Id == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func TestMatchSemanticUnionsKeyword(t *testing.T) {
	monday := entity.Slot{Day: "Monday", Time: "10:00-12:00", Mode: entity.ModeOnline}
	t1 := makeTutor("semantic-hit", monday)
	t2 := makeTutor("keyword-hit", monday)

	retriever := &fakeRetriever{hits: []SemanticHit{{TutorId: t1.Id, Score: 0.9}}}
	source := &fakeSource{tutors: []*entity.Tutor{t1, t2}}

	p := NewPipeline(retriever, source, noopLogger{})
	got, err := p.Match(context.Background(), &Request{Skill: "math"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("candidates = %d, want 2 (semantic + keyword union)", len(got))
	}
	if got[0].Tutor.Id != t1.Id || got[0].Reasoning != ReasoningSemantic {
		t.Errorf("first candidate = %+v, want semantic hit ranked first", got[0])
	}
	if got[1].Score != DefaultKeywordScore {
		t.Errorf("keyword-only candidate score = %v, want %v", got[1].Score, DefaultKeywordScore)
	}
}

func TestMatchFallsBackToKeywordOnSemanticError(t *testing.T) {
	monday := entity.Slot{Day: "Monday", Time: "10:00-12:00", Mode: entity.ModeOnline}
	t1 := makeTutor("keyword-only", monday)

	retriever := &fakeRetriever{err: errors.New("embedding provider down")}
	source := &fakeSource{tutors: []*entity.Tutor{t1}}

	p := NewPipeline(retriever, source, noopLogger{})
	got, err := p.Match(context.Background(), &Request{Skill: "math"})
	if err != nil {
		t.Fatalf("semantic failure must not surface: %v", err)
	}
	if len(got) != 1 || got[0].Tutor.Id != t1.Id {
		t.Fatalf("candidates = %+v, want the keyword fallback result", got)
	}
	if got[0].Reasoning != ReasoningKeyword {
		t.Errorf("reasoning = %q, want %q", got[0].Reasoning, ReasoningKeyword)
	}
}

func TestMatchSkillOnlyFallbackIgnoresFilters(t *testing.T) {
	// tutor matches the skill but not the requested day
	tuesday := entity.Slot{Day: "Tuesday", Time: "09:00-11:00", Mode: entity.ModeOnCampus}
	t1 := makeTutor("off-day", tuesday)

	retriever := &fakeRetriever{}
	source := &fakeSource{tutors: []*entity.Tutor{t1}}

	p := NewPipeline(retriever, source, noopLogger{})
	got, err := p.Match(context.Background(), &Request{Skill: "math", Day: "Monday"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Tutor.Id != t1.Id {
		t.Fatalf("candidates = %+v, want the skill-only fallback to keep the tutor", got)
	}
}

func TestMatchEmptyEverywhereReturnsEmptyNotError(t *testing.T) {
	p := NewPipeline(&fakeRetriever{}, &fakeSource{}, noopLogger{})

	got, err := p.Match(context.Background(), &Request{Skill: "underwater basket weaving"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("candidates = %v, want empty non-nil slice", got)
	}
}

func TestMatchRejectsMissingSkill(t *testing.T) {
	p := NewPipeline(&fakeRetriever{}, &fakeSource{}, noopLogger{})

	if _, err := p.Match(context.Background(), &Request{Skill: "  "}); err == nil {
		t.Fatal("expected validation error for empty skill")
	}
}

func TestMatchSkipsDeadEmbeddingRows(t *testing.T) {
	monday := entity.Slot{Day: "Monday", Time: "10:00-12:00", Mode: entity.ModeOnline}
	live := makeTutor("live", monday)

	retriever := &fakeRetriever{hits: []SemanticHit{
		{TutorId: uuid.New(), Score: 0.95}, // roster entry deleted
		{TutorId: live.Id, Score: 0.8},
	}}
	source := &fakeSource{tutors: []*entity.Tutor{live}}

	p := NewPipeline(retriever, source, noopLogger{})
	got, err := p.Match(context.Background(), &Request{Skill: "math"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Tutor.Id != live.Id {
		t.Fatalf("candidates = %+v, want only the live tutor", got)
	}
}
