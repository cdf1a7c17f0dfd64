package match

import (
	"strings"

	"tutor-match-be/internal/pkg/serverutils"
)

// Normalize canonicalizes a raw request. Skill must be non-empty; optional
// fields are trimmed and passed through, comparisons downstream are
// case-insensitive for day and substring-based for time.
func Normalize(req *Request) (*Request, error) {
	if req == nil {
		return nil, serverutils.NewValidationError("skill is required")
	}

	skill := strings.TrimSpace(req.Skill)
	if skill == "" {
		return nil, serverutils.NewValidationError("skill is required")
	}

	return &Request{
		Skill: skill,
		Day:   strings.TrimSpace(req.Day),
		Time:  strings.TrimSpace(req.Time),
		Mode:  strings.TrimSpace(req.Mode),
	}, nil
}
