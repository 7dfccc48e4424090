package validate

import (
	"tour_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputRegister", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputLogin", input)
		return c.Next()
	}
}

func VerifyToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.VerifyTokenInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputVerifyToken", input)
		return c.Next()
	}
}

func VerifyOTP() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.VerifyOTPInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputVerifyOTP", input)
		return c.Next()
	}
}

func GoogleLogin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GoogleLoginInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputGoogleLogin", input)
		return c.Next()
	}
}

func Refresh() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RefreshInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputRefresh", input)
		return c.Next()
	}
}

func ForgetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ForgetPasswordInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputForgetPassword", input)
		return c.Next()
	}
}

func SetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SetPasswordInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputSetPassword", input)
		return c.Next()
	}
}
