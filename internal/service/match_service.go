package service

import (
	"context"
	"time"

	"tutor-match-be/internal/constant"
	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/pkg/logger"
	"tutor-match-be/pkg/match"
	"tutor-match-be/pkg/store"
)

type IMatchService interface {
	MatchTutors(ctx context.Context, req *dto.MatchTutorsRequest) (*dto.MatchTutorsResponse, error)
}

type matchService struct {
	pipeline *match.Pipeline
	sessions store.SessionRepository
	logger   logger.ILogger
}

func NewMatchService(
	pipeline *match.Pipeline,
	sessions store.SessionRepository,
	log logger.ILogger,
) IMatchService {
	return &matchService{
		pipeline: pipeline,
		sessions: sessions,
		logger:   log,
	}
}

func (s *matchService) MatchTutors(ctx context.Context, req *dto.MatchTutorsRequest) (*dto.MatchTutorsResponse, error) {
	criteria := match.Request{
		Skill: req.Skill,
		Day:   req.Day,
		Time:  req.Time,
		Mode:  req.Mode,
	}

	candidates, err := s.pipeline.Match(ctx, &criteria)
	if err != nil {
		return nil, err
	}

	// Session state is written only after the search succeeds, so a failed
	// search never clobbers earlier results.
	if req.SessionId != "" {
		if err := s.rememberSearch(ctx, req.SessionId, criteria, candidates); err != nil {
			s.logger.Warn("match", "failed to store search results on session", map[string]interface{}{
				"session_id": req.SessionId,
				"error":      err.Error(),
			})
		}
	}

	return &dto.MatchTutorsResponse{Matches: candidates}, nil
}

func (s *matchService) rememberSearch(ctx context.Context, sessionId string, criteria match.Request, candidates []match.Candidate) error {
	session, err := s.sessions.Get(ctx, sessionId)
	if err != nil {
		return err
	}
	session.LastSearchCriteria = &criteria
	session.AvailableTutors = candidates

	summary := constant.MatchesFoundMessage
	if len(candidates) == 0 {
		summary = constant.NoMatchesMessage
	}
	session.Append(store.RoleAssistant, summary, nil, time.Now())

	return s.sessions.Put(ctx, session)
}
