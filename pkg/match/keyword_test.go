package match

import (
	"context"
	"testing"

	"tutor-match-be/internal/entity"
)

func TestKeywordMatcherAvailabilityFilters(t *testing.T) {
	mondayOnline := entity.Slot{Day: "Monday", Time: "10:00-12:00", Mode: entity.ModeOnline}
	fridayCampus := entity.Slot{Day: "Friday", Time: "14:00-16:00", Mode: entity.ModeOnCampus}

	t1 := makeTutor("monday-online", mondayOnline)
	t2 := makeTutor("friday-campus", fridayCampus)

	matcher := NewKeywordMatcher(&fakeSource{tutors: []*entity.Tutor{t1, t2}})

	tests := []struct {
		name      string
		req       *Request
		filters   bool
		wantNames []string
	}{
		{
			name:      "no filters returns everyone",
			req:       &Request{Skill: "math"},
			filters:   true,
			wantNames: []string{"monday-online", "friday-campus"},
		},
		{
			name:      "day filter",
			req:       &Request{Skill: "math", Day: "monday"},
			filters:   true,
			wantNames: []string{"monday-online"},
		},
		{
			name:      "mode filter case-insensitive",
			req:       &Request{Skill: "math", Mode: "ON CAMPUS"},
			filters:   true,
			wantNames: []string{"friday-campus"},
		},
		{
			name:      "time substring filter",
			req:       &Request{Skill: "math", Time: "14:00"},
			filters:   true,
			wantNames: []string{"friday-campus"},
		},
		{
			name:      "all filters must hold on one slot",
			req:       &Request{Skill: "math", Day: "Monday", Mode: entity.ModeOnCampus},
			filters:   true,
			wantNames: nil,
		},
		{
			name:      "filters disabled passes everyone through",
			req:       &Request{Skill: "math", Day: "Sunday"},
			filters:   false,
			wantNames: []string{"monday-online", "friday-campus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matcher.Match(context.Background(), tt.req, tt.filters)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("matched %d tutors, want %d", len(got), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if got[i].Name != name {
					t.Errorf("match[%d] = %s, want %s", i, got[i].Name, name)
				}
			}
		})
	}
}
