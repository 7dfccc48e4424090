package validate

import (
	"errors"
	"strconv"

	"tour_manager/constants"
	"tour_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		c.Locals("inputId", valueKey)

		return c.Next()
	}
}

// parseAndValidate runs the body through the shared validator. It writes the
// 400 itself and reports false when the handler chain must stop.
func parseAndValidate(c *fiber.Ctx, input any) bool {
	if err := c.BodyParser(input); err != nil {
		_ = utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		return false
	}
	if err := validate.Struct(input); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
		return false
	}
	return true
}
