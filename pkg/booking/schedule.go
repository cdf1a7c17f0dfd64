package booking

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"tutor-match-be/internal/entity"
)

// Scheduling links carry a fixed Pacific offset, matching the campus links
// the frontend embeds.
var linkZone = time.FixedZone("UTC-07:00", -7*60*60)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// NextOccurrence resolves the next future calendar occurrence of the slot's
// weekday and start time relative to now. If the start time on the current
// weekday has already passed, it rolls to next week.
func NextOccurrence(slot entity.Slot, now time.Time) time.Time {
	target, ok := weekdays[strings.ToLower(strings.TrimSpace(slot.Day))]
	if !ok {
		// unknown day name, anchor on now's weekday
		target = now.Weekday()
	}

	hour, minute := parseStartTime(slot.Time)

	local := now.In(linkZone)
	daysAhead := (int(target) - int(local.Weekday()) + 7) % 7

	candidate := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, linkZone).
		AddDate(0, 0, daysAhead)
	if !candidate.After(local) {
		candidate = candidate.AddDate(0, 0, 7)
	}
	return candidate
}

// parseStartTime extracts the HH:MM start of a "HH:MM-HH:MM" range.
// Malformed input defaults to a 09:00 start.
func parseStartTime(timeRange string) (int, int) {
	start := timeRange
	if idx := strings.Index(timeRange, "-"); idx >= 0 {
		start = timeRange[:idx]
	}
	parts := strings.SplitN(strings.TrimSpace(start), ":", 2)
	if len(parts) != 2 {
		return 9, 0
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 9, 0
	}
	return hour, minute
}

// BuildSchedulingLink formats the deterministic scheduling URL for a
// resolved start time.
func BuildSchedulingLink(baseURL string, startsAt time.Time) string {
	date := startsAt.In(linkZone).Format("2006-01-02T15:04:05-07:00")
	return fmt.Sprintf("%s?date=%s", baseURL, url.QueryEscape(date))
}
