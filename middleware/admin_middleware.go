package middleware

import (
	authutils "interview-prep-backend/lib/utils/auth-utils"

	"github.com/gofiber/fiber/v2"
)

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !authutils.IsAdmin(ctx) {
			return ctx.SendStatus(fiber.StatusForbidden)
		}
		return ctx.Next()
	}
}
