package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const userIDContextKey = "userID"

// AuthRequired verifies the bearer token and stashes the authenticated user
// id for downstream handlers. Identity comes from the subject claim only;
// no session state exists server-side.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	rawToken := bearerToken(c)
	if rawToken == "" {
		return apiError(c, fiber.StatusUnauthorized, "missing bearer token")
	}

	claims, err := handler.parseToken(rawToken)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	userID, err := claims.userID()
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid or expired token")
	}

	c.Locals(userIDContextKey, userID)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(userIDContextKey).(uint)
	return userID
}
