package controller

import (
	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/pkg/serverutils"
	"tutor-match-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	AcceptMatch(ctx *fiber.Ctx) error
	ResetSession(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Get(":sessionId", c.GetSession)
	h.Post(":sessionId/message", c.SendMessage)
	h.Post(":sessionId/accept", c.AcceptMatch)
	h.Post(":sessionId/reset", c.ResetSession)
}

func sessionIdParam(ctx *fiber.Ctx) (string, error) {
	sessionId := ctx.Params("sessionId")
	if sessionId == "" {
		return "", serverutils.NewValidationError("session id is required")
	}
	return sessionId, nil
}

func (c *chatController) GetSession(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.GetSession(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	req.SessionId = sessionId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.SendMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send message", res))
}

func (c *chatController) AcceptMatch(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AcceptMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	req.SessionId = sessionId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.AcceptMatch(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success accept match", res))
}

func (c *chatController) ResetSession(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.chatService.ResetSession(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset session", res))
}
