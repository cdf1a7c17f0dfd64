package match

import (
	"testing"

	"tutor-match-be/internal/pkg/serverutils"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		want    *Request
		wantErr bool
	}{
		{
			name:    "nil request",
			req:     nil,
			wantErr: true,
		},
		{
			name:    "empty skill",
			req:     &Request{Skill: ""},
			wantErr: true,
		},
		{
			name:    "whitespace skill",
			req:     &Request{Skill: "   "},
			wantErr: true,
		},
		{
			name: "trims all fields",
			req:  &Request{Skill: " calculus ", Day: " Monday ", Time: " 10:00 ", Mode: " online "},
			want: &Request{Skill: "calculus", Day: "Monday", Time: "10:00", Mode: "online"},
		},
		{
			name: "skill only",
			req:  &Request{Skill: "python"},
			want: &Request{Skill: "python"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if serverutils.KindOf(err) != serverutils.KindValidation {
					t.Errorf("error kind = %v, want validation", serverutils.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != *tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
