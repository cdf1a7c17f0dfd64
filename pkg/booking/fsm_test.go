package booking

import (
	"strings"
	"testing"
	"time"

	"tutor-match-be/internal/entity"

	"github.com/google/uuid"
)

var testSlot = entity.Slot{Day: "Monday", Time: "10:00-12:00", Mode: entity.ModeOnline}

func TestAdvanceFullWalk(t *testing.T) {
	m := NewMachine("https://scheduler.example.edu/book")
	info := NewInfo(uuid.New(), "Maya Chen", testSlot)
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC) // a Wednesday

	steps := []struct {
		input    string
		wantStep Step
	}{
		{"Jordan Lee jordan@example.com", StepCCSFEmail},
		{"jlee@mail.ccsf.edu", StepStudentId},
		{"W1234567", StepAllowOthers},
		{"yes", StepClasses},
		{"MATH 110, MATH 120", StepSpecificHelp},
		{"integration by parts", StepAdditionalNotes},
		{"prefer morning sessions", StepComplete},
	}

	for i, s := range steps {
		res := m.Advance(info, s.input, now)
		if !res.Advanced {
			t.Fatalf("step %d: input %q did not advance (stuck at %s)", i, s.input, res.Step)
		}
		if res.Step != s.wantStep {
			t.Fatalf("step %d: advanced to %s, want %s", i, res.Step, s.wantStep)
		}
		if s.wantStep != StepComplete && res.Payload != nil {
			t.Errorf("step %d: payload synthesized before completion", i)
		}
	}

	if info.StudentName != "Jordan Lee" || info.StudentEmail != "jordan@example.com" {
		t.Errorf("name/email = %q / %q", info.StudentName, info.StudentEmail)
	}
	if info.CCSFEmail != "jlee@mail.ccsf.edu" {
		t.Errorf("ccsf email = %q", info.CCSFEmail)
	}
	if info.AllowOtherStudents == nil || !*info.AllowOtherStudents {
		t.Error("allowOtherStudents should be true")
	}
	if len(info.Classes) != 2 || info.Classes[0] != "MATH 110" || info.Classes[1] != "MATH 120" {
		t.Errorf("classes = %v", info.Classes)
	}
}

func TestAdvanceCompletionPayload(t *testing.T) {
	m := NewMachine("https://scheduler.example.edu/book")
	info := NewInfo(uuid.New(), "Maya Chen", testSlot)
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	inputs := []string{
		"Jordan Lee jordan@example.com",
		"jlee@mail.ccsf.edu",
		"W1234567",
		"no",
		"MATH 110",
		"derivatives",
		"none",
	}

	var last Result
	for _, in := range inputs {
		last = m.Advance(info, in, now)
	}

	if !last.Completed || last.Payload == nil {
		t.Fatalf("final advance = %+v, want completed with payload", last)
	}
	p := last.Payload
	if p.Info != info {
		t.Error("payload should carry the accumulated info")
	}
	if p.StartsAt.Weekday() != time.Monday {
		t.Errorf("startsAt weekday = %s, want Monday", p.StartsAt.Weekday())
	}
	if !strings.HasPrefix(p.SchedulingLink, "https://scheduler.example.edu/book?date=") {
		t.Errorf("scheduling link = %q", p.SchedulingLink)
	}
	if info.AllowOtherStudents == nil || *info.AllowOtherStudents {
		t.Error("allowOtherStudents should be false")
	}
}

func TestAdvanceStaysOnInvalidInput(t *testing.T) {
	m := NewMachine("https://scheduler.example.edu/book")
	now := time.Now()

	tests := []struct {
		name  string
		step  Step
		input string
	}{
		{"empty name-email", StepNameEmail, ""},
		{"name without email", StepNameEmail, "Jordan Lee"},
		{"email without name", StepNameEmail, "jordan@example.com"},
		{"ccsf not an email", StepCCSFEmail, "not an email"},
		{"empty student id", StepStudentId, "   "},
		{"ambiguous yes/no", StepAllowOthers, "maybe"},
		{"empty classes", StepClasses, " , , "},
		{"empty help", StepSpecificHelp, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewInfo(uuid.New(), "Maya Chen", testSlot)
			info.Step = tt.step

			res := m.Advance(info, tt.input, now)
			if res.Advanced {
				t.Fatalf("input %q advanced from %s", tt.input, tt.step)
			}
			if res.Step != tt.step {
				t.Errorf("stay-transition moved step to %s", res.Step)
			}
			if info.Step != tt.step {
				t.Errorf("info.Step mutated to %s", info.Step)
			}
		})
	}
}

func TestParseYesNoVariants(t *testing.T) {
	yes := []string{"yes", "Y", "yeah", "Yep", "sure", "ok", "Okay", "yes."}
	no := []string{"no", "N", "nope", "Nah", "no!"}

	for _, in := range yes {
		got, ok := parseYesNo(in)
		if !ok || !got {
			t.Errorf("parseYesNo(%q) = (%v, %v), want (true, true)", in, got, ok)
		}
	}
	for _, in := range no {
		got, ok := parseYesNo(in)
		if !ok || got {
			t.Errorf("parseYesNo(%q) = (%v, %v), want (false, true)", in, got, ok)
		}
	}
	if _, ok := parseYesNo("perhaps"); ok {
		t.Error("parseYesNo(\"perhaps\") should not parse")
	}
}

func TestAdvanceOnCompletedBookingIsIdempotent(t *testing.T) {
	m := NewMachine("https://scheduler.example.edu/book")
	info := NewInfo(uuid.New(), "Maya Chen", testSlot)
	info.Step = StepComplete

	res := m.Advance(info, "anything", time.Now())
	if !res.Completed || res.Advanced {
		t.Errorf("advance on completed booking = %+v", res)
	}
}
