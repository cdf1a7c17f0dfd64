package match

import (
	"sort"

	"tutor-match-be/internal/entity"

	"github.com/google/uuid"
)

// Ranker merges semantic and keyword results, applies availability filters
// with revert-on-empty semantics, and orders the final candidate list.
type Ranker struct{}

func NewRanker() *Ranker {
	return &Ranker{}
}

// Merge unions both sources, deduplicated by tutor id. Semantic candidates
// come first and are never overwritten; tutors found only by keyword are
// appended with the default score.
func (r *Ranker) Merge(semantic []Candidate, keyword []*entity.Tutor) []Candidate {
	merged := make([]Candidate, 0, len(semantic)+len(keyword))
	seen := make(map[uuid.UUID]bool)

	for _, c := range semantic {
		if c.Tutor == nil || seen[c.Tutor.Id] {
			continue
		}
		seen[c.Tutor.Id] = true
		merged = append(merged, c)
	}

	for _, t := range keyword {
		if t == nil || seen[t.Id] {
			continue
		}
		seen[t.Id] = true
		merged = append(merged, Candidate{
			Tutor:     t,
			Score:     DefaultKeywordScore,
			Reasoning: ReasoningKeyword,
		})
	}

	return merged
}

// Rank applies the day, time and mode filters in order, recomputes each
// survivor's availableSlots, and sorts descending by score. Ties keep their
// relative insertion order.
func (r *Ranker) Rank(req *Request, pool []Candidate) []Candidate {
	out := r.applyFilters(req, pool)

	for i := range out {
		out[i].AvailableSlots = availableSlotsFor(req, out[i].Tutor)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// applyFilters narrows the pool one filter at a time. A filter that would
// eliminate every candidate is reverted: skill relevance outranks a hard
// availability mismatch.
func (r *Ranker) applyFilters(req *Request, pool []Candidate) []Candidate {
	out := pool

	if req.Day != "" {
		out = keepOrRevert(out, func(c Candidate) bool {
			return hasMatchingSlot(c.Tutor, req.Day, "", "")
		})
	}
	if req.Time != "" {
		out = keepOrRevert(out, func(c Candidate) bool {
			return hasMatchingSlot(c.Tutor, "", req.Time, "")
		})
	}
	if req.Mode != "" {
		out = keepOrRevert(out, func(c Candidate) bool {
			return hasMatchingSlot(c.Tutor, "", "", req.Mode)
		})
	}

	return out
}

func keepOrRevert(in []Candidate, keep func(Candidate) bool) []Candidate {
	filtered := make([]Candidate, 0, len(in))
	for _, c := range in {
		if keep(c) {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 && len(in) > 0 {
		return in
	}
	return filtered
}

// availableSlotsFor returns the subset of a tutor's slots matching the
// supplied filters, or the full list when no filter was supplied or the
// subset comes out empty.
func availableSlotsFor(req *Request, t *entity.Tutor) []entity.Slot {
	if t == nil {
		return nil
	}
	if req.Day == "" && req.Time == "" && req.Mode == "" {
		return t.Availability
	}

	var subset []entity.Slot
	for _, slot := range t.Availability {
		if slotMatches(slot, req.Day, req.Time, req.Mode) {
			subset = append(subset, slot)
		}
	}
	if len(subset) == 0 {
		return t.Availability
	}
	return subset
}
