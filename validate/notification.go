package validate

import (
	"tour_manager/model"

	"github.com/gofiber/fiber/v2"
)

func UpdatePreference() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePreferenceInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputUpdatePreference", input)
		return c.Next()
	}
}
