package booking

import (
	"regexp"
	"strings"
	"time"

	"tutor-match-be/internal/entity"

	"github.com/google/uuid"
)

// Step enumerates the information-gathering states, in collection order.
type Step string

const (
	StepNameEmail       Step = "name-email"
	StepCCSFEmail       Step = "ccsf-email"
	StepStudentId       Step = "student-id"
	StepAllowOthers     Step = "allow-others"
	StepClasses         Step = "classes"
	StepSpecificHelp    Step = "specific-help"
	StepAdditionalNotes Step = "additional-notes"
	StepComplete        Step = "complete"
)

// Info accumulates the booking fields collected across the conversation.
// Step only moves forward except on an explicit session reset.
type Info struct {
	Step               Step        `json:"step"`
	StudentName        string      `json:"studentName,omitempty"`
	StudentEmail       string      `json:"studentEmail,omitempty"`
	CCSFEmail          string      `json:"ccsfEmail,omitempty"`
	StudentId          string      `json:"studentId,omitempty"`
	AllowOtherStudents *bool       `json:"allowOtherStudents,omitempty"`
	Classes            []string    `json:"classes,omitempty"`
	SpecificHelp       string      `json:"specificHelp,omitempty"`
	AdditionalNotes    string      `json:"additionalNotes,omitempty"`
	TutorId            uuid.UUID   `json:"tutorId"`
	TutorName          string      `json:"tutorName"`
	Slot               entity.Slot `json:"slot"`
}

// NewInfo starts a booking for an accepted match at the first step.
func NewInfo(tutorId uuid.UUID, tutorName string, slot entity.Slot) *Info {
	return &Info{
		Step:      StepNameEmail,
		TutorId:   tutorId,
		TutorName: tutorName,
		Slot:      slot,
	}
}

// Result reports the outcome of one FSM advance.
type Result struct {
	// Advanced is false on a stay-transition: the input did not satisfy the
	// current step and the caller should re-prompt.
	Advanced  bool
	Step      Step
	Completed bool
	// Payload is set only when the advance reached the complete step.
	Payload *Payload
}

// Payload is the finalized booking emitted at completion.
type Payload struct {
	Info           *Info     `json:"info"`
	StartsAt       time.Time `json:"startsAt"`
	SchedulingLink string    `json:"schedulingLink"`
}

// transition binds a step to its input validation and field assignment.
type transition struct {
	step  Step
	next  Step
	apply func(info *Info, input string) bool
}

// Machine drives the strictly sequential booking conversation. It holds the
// transition table and the scheduling-link base URL; it carries no
// per-session state.
type Machine struct {
	schedulingBaseURL string
	transitions       []transition
}

func NewMachine(schedulingBaseURL string) *Machine {
	m := &Machine{schedulingBaseURL: schedulingBaseURL}
	m.transitions = []transition{
		{StepNameEmail, StepCCSFEmail, applyNameEmail},
		{StepCCSFEmail, StepStudentId, applyCCSFEmail},
		{StepStudentId, StepAllowOthers, applyStudentId},
		{StepAllowOthers, StepClasses, applyAllowOthers},
		{StepClasses, StepSpecificHelp, applyClasses},
		{StepSpecificHelp, StepAdditionalNotes, applySpecificHelp},
		{StepAdditionalNotes, StepComplete, applyAdditionalNotes},
	}
	return m
}

// Advance feeds one user input into the FSM. Invalid input is a
// stay-transition, not an error. Reaching the complete step synthesizes the
// final payload with the deterministic scheduling link relative to now.
func (m *Machine) Advance(info *Info, input string, now time.Time) Result {
	if info == nil || info.Step == StepComplete {
		return Result{Step: StepComplete, Completed: true}
	}

	for _, tr := range m.transitions {
		if tr.step != info.Step {
			continue
		}
		if !tr.apply(info, strings.TrimSpace(input)) {
			return Result{Advanced: false, Step: info.Step}
		}

		info.Step = tr.next
		res := Result{Advanced: true, Step: tr.next}
		if tr.next == StepComplete {
			res.Completed = true
			res.Payload = m.synthesize(info, now)
		}
		return res
	}

	// unknown step, treat as stay
	return Result{Advanced: false, Step: info.Step}
}

func (m *Machine) synthesize(info *Info, now time.Time) *Payload {
	startsAt := NextOccurrence(info.Slot, now)
	return &Payload{
		Info:           info,
		StartsAt:       startsAt,
		SchedulingLink: BuildSchedulingLink(m.schedulingBaseURL, startsAt),
	}
}

var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// applyNameEmail expects a name and an email in one message, in any order.
func applyNameEmail(info *Info, input string) bool {
	email := emailPattern.FindString(input)
	if email == "" {
		return false
	}
	name := strings.TrimSpace(strings.NewReplacer(email, "", ",", " ").Replace(input))
	if name == "" {
		return false
	}
	info.StudentName = name
	info.StudentEmail = email
	return true
}

func applyCCSFEmail(info *Info, input string) bool {
	email := emailPattern.FindString(input)
	if email == "" {
		return false
	}
	info.CCSFEmail = email
	return true
}

func applyStudentId(info *Info, input string) bool {
	if input == "" {
		return false
	}
	info.StudentId = input
	return true
}

func applyAllowOthers(info *Info, input string) bool {
	answer, ok := parseYesNo(input)
	if !ok {
		return false
	}
	info.AllowOtherStudents = &answer
	return true
}

func applyClasses(info *Info, input string) bool {
	if input == "" {
		return false
	}
	parts := strings.Split(input, ",")
	classes := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.TrimSpace(p); c != "" {
			classes = append(classes, c)
		}
	}
	if len(classes) == 0 {
		return false
	}
	info.Classes = classes
	return true
}

func applySpecificHelp(info *Info, input string) bool {
	if input == "" {
		return false
	}
	info.SpecificHelp = input
	return true
}

func applyAdditionalNotes(info *Info, input string) bool {
	if input == "" {
		return false
	}
	info.AdditionalNotes = input
	return true
}

// parseYesNo recognizes common affirmative and negative answers.
func parseYesNo(input string) (bool, bool) {
	switch strings.ToLower(strings.TrimRight(strings.TrimSpace(input), ".!")) {
	case "yes", "y", "yeah", "yep", "sure", "ok", "okay":
		return true, true
	case "no", "n", "nope", "nah":
		return false, true
	}
	return false, false
}
