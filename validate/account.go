package validate

import (
	"tour_manager/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateProfileInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputUpdateProfile", input)
		return c.Next()
	}
}
