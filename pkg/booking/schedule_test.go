package booking

import (
	"testing"
	"time"

	"tutor-match-be/internal/entity"
)

func TestNextOccurrence(t *testing.T) {
	// Monday March 9 2026, 08:00 in the link zone
	monday8am := time.Date(2026, 3, 9, 8, 0, 0, 0, linkZone)

	tests := []struct {
		name string
		slot entity.Slot
		now  time.Time
		want time.Time
	}{
		{
			name: "later this week",
			slot: entity.Slot{Day: "Wednesday", Time: "14:00-16:00"},
			now:  monday8am,
			want: time.Date(2026, 3, 11, 14, 0, 0, 0, linkZone),
		},
		{
			name: "same day, start still ahead",
			slot: entity.Slot{Day: "Monday", Time: "10:00-12:00"},
			now:  monday8am,
			want: time.Date(2026, 3, 9, 10, 0, 0, 0, linkZone),
		},
		{
			name: "same day, start already passed rolls a week",
			slot: entity.Slot{Day: "Monday", Time: "10:00-12:00"},
			now:  time.Date(2026, 3, 9, 11, 0, 0, 0, linkZone),
			want: time.Date(2026, 3, 16, 10, 0, 0, 0, linkZone),
		},
		{
			name: "earlier weekday wraps to next week",
			slot: entity.Slot{Day: "Sunday", Time: "10:00-12:00"},
			now:  monday8am,
			want: time.Date(2026, 3, 15, 10, 0, 0, 0, linkZone),
		},
		{
			name: "day name is case-insensitive",
			slot: entity.Slot{Day: "wednesday", Time: "14:00-16:00"},
			now:  monday8am,
			want: time.Date(2026, 3, 11, 14, 0, 0, 0, linkZone),
		},
		{
			name: "malformed time defaults to nine",
			slot: entity.Slot{Day: "Tuesday", Time: "morning"},
			now:  monday8am,
			want: time.Date(2026, 3, 10, 9, 0, 0, 0, linkZone),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(tt.slot, tt.now)
			if !got.Equal(tt.want) {
				t.Errorf("NextOccurrence() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextOccurrenceUsesLinkZoneRegardlessOfInput(t *testing.T) {
	// 08:00 UTC is 01:00 in the link zone, still Monday
	nowUTC := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	got := NextOccurrence(entity.Slot{Day: "Monday", Time: "10:00-12:00"}, nowUTC)

	want := time.Date(2026, 3, 9, 10, 0, 0, 0, linkZone)
	if !got.Equal(want) {
		t.Errorf("NextOccurrence() = %s, want %s", got, want)
	}
}

func TestParseStartTime(t *testing.T) {
	tests := []struct {
		input      string
		wantHour   int
		wantMinute int
	}{
		{"10:00-12:00", 10, 0},
		{"14:30-16:00", 14, 30},
		{"09:15", 9, 15},
		{"", 9, 0},
		{"morning", 9, 0},
		{"25:00-26:00", 9, 0},
	}

	for _, tt := range tests {
		h, m := parseStartTime(tt.input)
		if h != tt.wantHour || m != tt.wantMinute {
			t.Errorf("parseStartTime(%q) = %d:%02d, want %d:%02d", tt.input, h, m, tt.wantHour, tt.wantMinute)
		}
	}
}

func TestBuildSchedulingLink(t *testing.T) {
	startsAt := time.Date(2026, 3, 9, 10, 0, 0, 0, linkZone)
	got := BuildSchedulingLink("https://scheduler.example.edu/book", startsAt)

	want := "https://scheduler.example.edu/book?date=2026-03-09T10%3A00%3A00-07%3A00"
	if got != want {
		t.Errorf("BuildSchedulingLink() = %q, want %q", got, want)
	}
}
