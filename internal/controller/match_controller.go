package controller

import (
	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/pkg/serverutils"
	"tutor-match-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMatchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
}

type matchController struct {
	matchService service.IMatchService
}

func NewMatchController(matchService service.IMatchService) IMatchController {
	return &matchController{
		matchService: matchService,
	}
}

func (c *matchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/match/v1")
	h.Post("search", c.Search)
}

func (c *matchController) Search(ctx *fiber.Ctx) error {
	var req dto.MatchTutorsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.matchService.MatchTutors(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success match tutors", res))
}
