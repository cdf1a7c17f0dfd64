package constant

import "tutor-match-be/pkg/booking"

// GreetingMessage seeds every new chat session.
const GreetingMessage = "Hi! I can help you find a tutor. Tell me what subject or skill you need help with, and optionally a day, time, or mode (online / on campus)."

// HelperReply is returned for free-form messages sent outside a booking flow.
const HelperReply = "To find a tutor, search with a skill (for example \"calculus\" or \"python\"). Once you pick a match I can walk you through booking a session."

// NoMatchesMessage is returned when every retrieval strategy comes back empty.
const NoMatchesMessage = "I couldn't find any tutors matching that request. Try a broader skill or drop the day/time filters."

// MatchesFoundMessage prefixes a successful search reply.
const MatchesFoundMessage = "Here are the tutors I found for you. Reply with an accept request when you've picked one."

// BookingStartedMessage opens the booking conversation once a match is accepted.
const BookingStartedMessage = "Great choice! Let's get your session with %s booked."

// BookingCompletedMessage closes the booking conversation. Arguments: tutor
// name, day, time range, scheduling link.
const BookingCompletedMessage = "You're all set! Your session with %s is booked for %s at %s. Use this link to add it to your calendar: %s. A confirmation email is on its way."

// InvalidInputMessage is sent when a booking answer cannot be parsed; the
// step prompt is repeated after it.
const InvalidInputMessage = "Sorry, I didn't catch that."

// BookingStepPrompts maps each booking step to the question the assistant
// asks for it.
var BookingStepPrompts = map[booking.Step]string{
	booking.StepNameEmail:       "What's your full name and email address?",
	booking.StepCCSFEmail:       "What's your CCSF email address?",
	booking.StepStudentId:       "What's your student ID?",
	booking.StepAllowOthers:     "Are you okay with other students joining this session? (yes/no)",
	booking.StepClasses:         "Which classes do you want help with? (comma separated)",
	booking.StepSpecificHelp:    "What specifically would you like help with?",
	booking.StepAdditionalNotes: "Any additional notes for your tutor?",
}
