package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vitalsboard/vitals/internal/models"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, err := handler.auth.FindByID(c.UserContext(), currentUserID(c))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(profileResponse(user))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := profileInput{}
	if err := handler.parseAndValidate(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid data")
	}

	updates := map[string]any{}
	if input.Age != nil {
		updates["age"] = *input.Age
	}
	if input.Weight != nil {
		updates["weight"] = *input.Weight
	}
	if input.Height != nil {
		updates["height"] = *input.Height
	}
	if input.Gender != nil {
		updates["gender"] = *input.Gender
	}
	if input.ProfileImagePath != nil {
		updates["profile_image_path"] = *input.ProfileImagePath
	}

	userID := currentUserID(c)
	if err := handler.auth.UpdateProfile(c.UserContext(), userID, updates); err != nil {
		return handler.respondServiceError(c, err)
	}

	user, err := handler.auth.FindByID(c.UserContext(), userID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(profileResponse(user))
}

func profileResponse(user models.User) fiber.Map {
	return fiber.Map{
		"id":               user.ID,
		"name":             user.Name,
		"email":            user.Email,
		"age":              user.Age,
		"weight":           user.Weight,
		"height":           user.Height,
		"gender":           user.Gender,
		"profileImagePath": user.ProfileImagePath,
	}
}
