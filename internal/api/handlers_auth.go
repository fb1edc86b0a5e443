package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid data")
	}

	if _, err := handler.auth.Register(c.UserContext(), input.Name, input.Email, input.Password); err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "New user created!"})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		// Same response as a failed password check so callers cannot
		// probe which part of the input was wrong.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid username or password",
		})
	}

	user, err := handler.auth.Authenticate(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	token, err := handler.buildToken(&user, time.Now().In(handler.location))
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

// Logout acknowledges the request and nothing more. Tokens are not tracked
// server-side, so the client discarding its copy is the whole logout.
func (handler *Handler) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "User logged out!"})
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
