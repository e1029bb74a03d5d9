package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Register() fiber.Handler {
	return body[model.RegisterInput]("registerInput")
}

func CreateStaff() fiber.Handler {
	return body[model.CreateStaffInput]("createStaffInput")
}

func ForgotPassword() fiber.Handler {
	return body[model.ForgotPasswordRequest]("forgotPasswordInput")
}

func ResetPassword() fiber.Handler {
	return body[model.ResetPasswordRequest]("resetPasswordInput")
}
