package service

import (
	"context"
	"testing"
	"time"

	"tutor-match-be/internal/constant"
	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/repository/memory"
	"tutor-match-be/pkg/match"
	"tutor-match-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRetriever struct {
	hits []match.SemanticHit
	err  error
}

func (s *stubRetriever) Retrieve(ctx context.Context, skill string, topK int) ([]match.SemanticHit, error) {
	return s.hits, s.err
}

type stubSource struct {
	tutors []*entity.Tutor
}

func (s *stubSource) FindByKeyword(ctx context.Context, keyword string) ([]*entity.Tutor, error) {
	return s.tutors, nil
}

func (s *stubSource) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Tutor, error) {
	var out []*entity.Tutor
	for _, t := range s.tutors {
		for _, id := range ids {
			if t.Id == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func TestMatchTutorsStoresResultsOnSession(t *testing.T) {
	tutor := calcTutor()
	pipeline := match.NewPipeline(
		&stubRetriever{hits: []match.SemanticHit{{TutorId: tutor.Id, Score: 0.85}}},
		&stubSource{tutors: []*entity.Tutor{tutor}},
		testLogger{},
	)
	sessions := memory.NewSessionRepository(time.Hour)
	svc := NewMatchService(pipeline, sessions, testLogger{})

	res, err := svc.MatchTutors(context.Background(), &dto.MatchTutorsRequest{
		Skill:     "calculus",
		SessionId: "s1",
	})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, tutor.Id, res.Matches[0].Tutor.Id)

	session, err := sessions.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, session.LastSearchCriteria)
	assert.Equal(t, "calculus", session.LastSearchCriteria.Skill)
	require.Len(t, session.AvailableTutors, 1)
	assert.Equal(t, tutor.Id, session.AvailableTutors[0].Tutor.Id)

	// greeting + results summary
	require.Len(t, session.Messages, 2)
	assert.Equal(t, store.RoleAssistant, session.Messages[1].Role)
	assert.Equal(t, constant.MatchesFoundMessage, session.Messages[1].Content)
}

func TestMatchTutorsEmptyResultLeavesNoMatchesMessage(t *testing.T) {
	pipeline := match.NewPipeline(&stubRetriever{}, &stubSource{}, testLogger{})
	sessions := memory.NewSessionRepository(time.Hour)
	svc := NewMatchService(pipeline, sessions, testLogger{})

	res, err := svc.MatchTutors(context.Background(), &dto.MatchTutorsRequest{
		Skill:     "underwater basket weaving",
		SessionId: "s1",
	})
	require.NoError(t, err)
	assert.Empty(t, res.Matches)

	session, err := sessions.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, session.Messages, 2)
	assert.Equal(t, constant.NoMatchesMessage, session.Messages[1].Content)
	assert.Empty(t, session.AvailableTutors)
}

func TestMatchTutorsWithoutSessionSkipsStore(t *testing.T) {
	tutor := calcTutor()
	pipeline := match.NewPipeline(
		&stubRetriever{},
		&stubSource{tutors: []*entity.Tutor{tutor}},
		testLogger{},
	)
	sessions := memory.NewSessionRepository(time.Hour)
	svc := NewMatchService(pipeline, sessions, testLogger{})

	res, err := svc.MatchTutors(context.Background(), &dto.MatchTutorsRequest{Skill: "calculus"})
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
}

func TestMatchTutorsValidationErrorLeavesSessionUntouched(t *testing.T) {
	pipeline := match.NewPipeline(&stubRetriever{}, &stubSource{}, testLogger{})
	sessions := memory.NewSessionRepository(time.Hour)
	svc := NewMatchService(pipeline, sessions, testLogger{})

	// seed previous results
	session, err := sessions.Get(context.Background(), "s1")
	require.NoError(t, err)
	session.AvailableTutors = []match.Candidate{{Tutor: calcTutor(), Score: 0.7}}
	require.NoError(t, sessions.Put(context.Background(), session))

	_, err = svc.MatchTutors(context.Background(), &dto.MatchTutorsRequest{
		Skill:     "   ",
		SessionId: "s1",
	})
	require.Error(t, err)

	got, err := sessions.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, got.AvailableTutors, 1, "failed search must not clobber earlier results")
}
