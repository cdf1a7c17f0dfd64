package serverutils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps application errors onto HTTP statuses.
// Internal causes are logged server-side and never leaked to clients.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch KindOf(err) {
		case KindValidation:
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": MessageOf(err)})
		case KindNotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": MessageOf(err)})
		case KindUpstreamUnavailable:
			log.Printf("[ERROR] upstream unavailable: %v", err)
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"message": MessageOf(err)})
		default:
			log.Printf("[ERROR] unhandled: %v", err)
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
		}
	}
}
