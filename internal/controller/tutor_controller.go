package controller

import (
	"tutor-match-be/internal/dto"
	"tutor-match-be/internal/pkg/serverutils"
	"tutor-match-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITutorController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
}

type tutorController struct {
	tutorService service.ITutorService
}

func NewTutorController(tutorService service.ITutorService) ITutorController {
	return &tutorController{
		tutorService: tutorService,
	}
}

func (c *tutorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tutor/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
}

func (c *tutorController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.tutorService.GetAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get tutors", res))
}

func (c *tutorController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid tutor id")
	}

	res, err := c.tutorService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show tutor", res))
}

func (c *tutorController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTutorRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.tutorService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create tutor", res))
}
