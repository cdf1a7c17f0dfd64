package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"tutor-match-be/internal/constant"
	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/entity"
	"tutor-match-be/internal/pkg/serverutils"
	"tutor-match-be/internal/repository/memory"
	"tutor-match-be/pkg/booking"
	"tutor-match-be/pkg/match"
	"tutor-match-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLogger struct{}

func (testLogger) Debug(module, message string, details map[string]interface{}) {}
func (testLogger) Info(module, message string, details map[string]interface{})  {}
func (testLogger) Warn(module, message string, details map[string]interface{})  {}
func (testLogger) Error(module, message string, details map[string]interface{}) {}
func (testLogger) Sync() error                                                  { return nil }

func newTestChatService(t *testing.T) (IChatService, store.SessionRepository) {
	t.Helper()
	sessions := memory.NewSessionRepository(time.Hour)
	machine := booking.NewMachine("https://scheduler.example.edu/book")
	svc := NewChatService(sessions, machine, nil, nil, testLogger{})
	return svc, sessions
}

func seedMatches(t *testing.T, sessions store.SessionRepository, sessionId string, candidates ...match.Candidate) {
	t.Helper()
	session, err := sessions.Get(context.Background(), sessionId)
	require.NoError(t, err)
	session.AvailableTutors = candidates
	require.NoError(t, sessions.Put(context.Background(), session))
}

func calcTutor() *entity.Tutor {
	return &entity.Tutor{
		Id:     uuid.New(),
		Name:   "Maya Chen",
		Skills: []string{"calculus"},
		Mode:   entity.ModeOnline,
		Availability: []entity.Slot{
			{Day: "Monday", Time: "10:00-12:00", Mode: entity.ModeOnline},
			{Day: "Wednesday", Time: "14:00-16:00", Mode: entity.ModeOnline},
		},
	}
}

func TestSendMessageOutsideBookingReturnsHelper(t *testing.T) {
	svc, _ := newTestChatService(t)

	res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		SessionId: "s1",
		Message:   "hello there",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.HelperReply, res.Reply.Content)
	assert.False(t, res.BookingCompleted)

	session, err := svc.GetSession(context.Background(), "s1")
	require.NoError(t, err)
	// greeting + user message + helper reply
	assert.Len(t, session.Messages, 3)
}

func TestAcceptMatchStartsBooking(t *testing.T) {
	svc, sessions := newTestChatService(t)
	tutor := calcTutor()
	seedMatches(t, sessions, "s1", match.Candidate{
		Tutor:          tutor,
		Score:          0.9,
		Reasoning:      match.ReasoningSemantic,
		AvailableSlots: tutor.Availability,
	})

	res, err := svc.AcceptMatch(context.Background(), &dto.AcceptMatchRequest{
		SessionId: "s1",
		TutorId:   tutor.Id,
		Day:       "Wednesday",
	})
	require.NoError(t, err)

	assert.Contains(t, res.Reply.Content, constant.BookingStepPrompts[booking.StepNameEmail])

	session, err := sessions.Get(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, session.BookingInfo)
	assert.Equal(t, booking.StepNameEmail, session.BookingInfo.Step)
	assert.Equal(t, tutor.Id, session.BookingInfo.TutorId)
	assert.Equal(t, "Wednesday", session.BookingInfo.Slot.Day)
	require.NotNil(t, session.PendingMatch)
	assert.Equal(t, tutor.Id, session.PendingMatch.Tutor.Id)
}

func TestAcceptMatchRejectsUnknownTutor(t *testing.T) {
	svc, sessions := newTestChatService(t)
	seedMatches(t, sessions, "s1", match.Candidate{Tutor: calcTutor(), Score: 0.9})

	_, err := svc.AcceptMatch(context.Background(), &dto.AcceptMatchRequest{
		SessionId: "s1",
		TutorId:   uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, serverutils.KindNotFound, serverutils.KindOf(err))
}

func TestBookingConversationEndToEnd(t *testing.T) {
	svc, sessions := newTestChatService(t)
	tutor := calcTutor()
	seedMatches(t, sessions, "s1", match.Candidate{
		Tutor:          tutor,
		Score:          0.9,
		AvailableSlots: tutor.Availability,
	})

	_, err := svc.AcceptMatch(context.Background(), &dto.AcceptMatchRequest{
		SessionId: "s1",
		TutorId:   tutor.Id,
	})
	require.NoError(t, err)

	send := func(msg string) *dto.SendMessageResponse {
		res, err := svc.SendMessage(context.Background(), &dto.SendMessageRequest{
			SessionId: "s1",
			Message:   msg,
		})
		require.NoError(t, err)
		return res
	}

	// invalid input repeats the current prompt
	res := send("no email here")
	assert.False(t, res.BookingCompleted)
	assert.Contains(t, res.Reply.Content, constant.InvalidInputMessage)
	assert.Contains(t, res.Reply.Content, constant.BookingStepPrompts[booking.StepNameEmail])

	for _, msg := range []string{
		"Jordan Lee jordan@example.com",
		"jlee@mail.ccsf.edu",
		"W1234567",
		"yes",
		"MATH 110",
		"related rates",
	} {
		res = send(msg)
		require.False(t, res.BookingCompleted, "completed early on %q", msg)
	}

	res = send("no notes")
	assert.True(t, res.BookingCompleted)
	assert.Contains(t, res.Reply.Content, tutor.Name)
	assert.Contains(t, res.Reply.Content, "https://scheduler.example.edu/book?date=")
	assert.True(t, strings.Contains(res.Reply.Content, "Monday"))

	session, err := sessions.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, booking.StepComplete, session.BookingInfo.Step)
	assert.Nil(t, session.PendingMatch)
}

func TestResetSessionClearsEverything(t *testing.T) {
	svc, sessions := newTestChatService(t)
	tutor := calcTutor()
	seedMatches(t, sessions, "s1", match.Candidate{Tutor: tutor, Score: 0.9, AvailableSlots: tutor.Availability})

	_, err := svc.AcceptMatch(context.Background(), &dto.AcceptMatchRequest{
		SessionId: "s1",
		TutorId:   tutor.Id,
	})
	require.NoError(t, err)

	res, err := svc.ResetSession(context.Background(), "s1")
	require.NoError(t, err)

	require.Len(t, res.Messages, 1)
	assert.Equal(t, constant.GreetingMessage, res.Messages[0].Content)
	assert.False(t, res.BookingActive)
	assert.Zero(t, res.AvailableTutors)
}
