package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func SubmitFeedback() fiber.Handler {
	return body[model.SubmitFeedbackInput]("submitFeedbackInput")
}
