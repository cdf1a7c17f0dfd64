package match

import (
	"context"
	"strings"

	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/repository/specification"
	"tutor-match-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// KeywordMatcher scans tutor skill/bio text for substring hits. It carries
// the availability filtering the relational store cannot express over the
// JSONB availability document.
type KeywordMatcher struct {
	source TutorSource
}

func NewKeywordMatcher(source TutorSource) *KeywordMatcher {
	return &KeywordMatcher{source: source}
}

// Match returns tutors whose skills or bio contain the skill token. With
// applyFilters set, tutors must also have at least one availability slot
// matching every supplied day/time/mode filter.
func (m *KeywordMatcher) Match(ctx context.Context, req *Request, applyFilters bool) ([]*entity.Tutor, error) {
	tutors, err := m.source.FindByKeyword(ctx, req.Skill)
	if err != nil {
		return nil, err
	}

	if !applyFilters || (req.Day == "" && req.Time == "" && req.Mode == "") {
		return tutors, nil
	}

	var filtered []*entity.Tutor
	for _, t := range tutors {
		if hasMatchingSlot(t, req.Day, req.Time, req.Mode) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func hasMatchingSlot(t *entity.Tutor, day, timeStr, mode string) bool {
	for _, slot := range t.Availability {
		if slotMatches(slot, day, timeStr, mode) {
			return true
		}
	}
	return false
}

// slotMatches checks a slot against every supplied filter. Empty filters
// always pass; day and mode compare case-insensitively, time by substring.
func slotMatches(slot entity.Slot, day, timeStr, mode string) bool {
	if day != "" && !strings.EqualFold(slot.Day, day) {
		return false
	}
	if timeStr != "" && !strings.Contains(slot.Time, timeStr) {
		return false
	}
	if mode != "" && !strings.EqualFold(slot.Mode, mode) {
		return false
	}
	return true
}

// RepositoryTutorSource adapts the tutor repository to the TutorSource
// contract the pipeline consumes.
type RepositoryTutorSource struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRepositoryTutorSource(uowFactory unitofwork.RepositoryFactory) *RepositoryTutorSource {
	return &RepositoryTutorSource{uowFactory: uowFactory}
}

func (s *RepositoryTutorSource) FindByKeyword(ctx context.Context, keyword string) ([]*entity.Tutor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.TutorRepository().FindByKeyword(ctx, keyword)
}

func (s *RepositoryTutorSource) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Tutor, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.TutorRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
}
