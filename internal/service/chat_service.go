package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tutor-match-be/internal/constant"
	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/pkg/logger"
	"tutor-match-be/internal/pkg/mailer"
	"tutor-match-be/internal/pkg/serverutils"
	"tutor-match-be/internal/entity"
	"tutor-match-be/pkg/booking"
	"tutor-match-be/pkg/events"
	pktNats "tutor-match-be/pkg/nats"
	"tutor-match-be/pkg/store"
)

type IChatService interface {
	GetSession(ctx context.Context, sessionId string) (*dto.ChatSessionResponse, error)
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	AcceptMatch(ctx context.Context, req *dto.AcceptMatchRequest) (*dto.AcceptMatchResponse, error)
	ResetSession(ctx context.Context, sessionId string) (*dto.ChatSessionResponse, error)
}

type chatService struct {
	sessions       store.SessionRepository
	machine        *booking.Machine
	eventPublisher *pktNats.Publisher
	emailService   mailer.IEmailService
	logger         logger.ILogger
}

func NewChatService(
	sessions store.SessionRepository,
	machine *booking.Machine,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		sessions:       sessions,
		machine:        machine,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		logger:         log,
	}
}

func (s *chatService) GetSession(ctx context.Context, sessionId string) (*dto.ChatSessionResponse, error) {
	session, err := s.sessions.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	session, err := s.sessions.Get(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session.Append(store.RoleUser, req.Message, nil, now)

	var reply string
	completed := false

	if session.BookingInfo != nil && session.BookingInfo.Step != booking.StepComplete {
		reply, completed = s.advanceBooking(ctx, session, req.Message, now)
	} else {
		reply = constant.HelperReply
	}

	session.Append(store.RoleAssistant, reply, nil, now)

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return &dto.SendMessageResponse{
		SessionId:        session.Id,
		Reply:            session.Messages[len(session.Messages)-1],
		BookingCompleted: completed,
	}, nil
}

// advanceBooking feeds one message into the FSM and renders the assistant's
// reply for the resulting step.
func (s *chatService) advanceBooking(ctx context.Context, session *store.ChatSession, input string, now time.Time) (string, bool) {
	res := s.machine.Advance(session.BookingInfo, input, now)

	if !res.Advanced {
		return constant.InvalidInputMessage + " " + constant.BookingStepPrompts[res.Step], false
	}

	if !res.Completed {
		return constant.BookingStepPrompts[res.Step], false
	}

	payload := res.Payload
	s.finalizeBooking(ctx, payload)
	session.PendingMatch = nil

	return fmt.Sprintf(constant.BookingCompletedMessage,
		payload.Info.TutorName,
		payload.Info.Slot.Day,
		payload.Info.Slot.Time,
		payload.SchedulingLink,
	), true
}

// finalizeBooking runs the completion side effects. Both are best effort: a
// down broker or SMTP server must not fail the booking itself.
func (s *chatService) finalizeBooking(ctx context.Context, payload *booking.Payload) {
	info := payload.Info

	if s.eventPublisher != nil {
		evt := events.NewBookingCompletedEvent(
			info.TutorId, info.TutorName, info.StudentEmail,
			info.Slot.Day, info.Slot.Time, payload.SchedulingLink,
		)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ChatService", "failed to publish booking event", map[string]interface{}{
				"tutor_id": info.TutorId.String(),
				"error":    err.Error(),
			})
		}
	}

	if s.emailService != nil {
		toEmail := info.CCSFEmail
		if toEmail == "" {
			toEmail = info.StudentEmail
		}
		if err := s.emailService.SendBookingConfirmation(
			toEmail, info.StudentName, info.TutorName,
			info.Slot.Day, info.Slot.Time, payload.SchedulingLink,
		); err != nil {
			s.logger.Warn("ChatService", "failed to send confirmation email", map[string]interface{}{
				"tutor_id": info.TutorId.String(),
				"error":    err.Error(),
			})
		}
	}
}

func (s *chatService) AcceptMatch(ctx context.Context, req *dto.AcceptMatchRequest) (*dto.AcceptMatchResponse, error) {
	session, err := s.sessions.Get(ctx, req.SessionId)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range session.AvailableTutors {
		if session.AvailableTutors[i].Tutor != nil && session.AvailableTutors[i].Tutor.Id == req.TutorId {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, serverutils.NewNotFoundError("tutor is not among the current matches; search again first")
	}

	accepted := session.AvailableTutors[idx]
	slot := pickSlot(accepted.AvailableSlots, accepted.Tutor.Availability, req.Day, req.Time, req.Mode)

	now := time.Now()
	session.PendingMatch = &accepted
	session.BookingInfo = booking.NewInfo(accepted.Tutor.Id, accepted.Tutor.Name, slot)

	reply := fmt.Sprintf(constant.BookingStartedMessage, accepted.Tutor.Name) +
		" " + constant.BookingStepPrompts[booking.StepNameEmail]
	session.Append(store.RoleAssistant, reply, &accepted, now)

	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, err
	}

	return &dto.AcceptMatchResponse{
		SessionId: session.Id,
		Reply:     session.Messages[len(session.Messages)-1],
	}, nil
}

func (s *chatService) ResetSession(ctx context.Context, sessionId string) (*dto.ChatSessionResponse, error) {
	session, err := s.sessions.Reset(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// pickSlot chooses the slot the booking is anchored to: the first available
// slot matching the caller's day/time/mode hints, else the first available
// slot, else the tutor's first advertised slot.
func pickSlot(available []entity.Slot, advertised []entity.Slot, day, timeHint, mode string) entity.Slot {
	pool := available
	if len(pool) == 0 {
		pool = advertised
	}
	if len(pool) == 0 {
		return entity.Slot{}
	}

	for _, slot := range pool {
		if day != "" && !strings.EqualFold(slot.Day, day) {
			continue
		}
		if timeHint != "" && !strings.Contains(slot.Time, timeHint) {
			continue
		}
		if mode != "" && !strings.EqualFold(slot.Mode, mode) {
			continue
		}
		return slot
	}
	return pool[0]
}

func toSessionResponse(session *store.ChatSession) *dto.ChatSessionResponse {
	return &dto.ChatSessionResponse{
		Id:              session.Id,
		Messages:        session.Messages,
		BookingActive:   session.BookingInfo != nil && session.BookingInfo.Step != booking.StepComplete,
		AvailableTutors: len(session.AvailableTutors),
	}
}
