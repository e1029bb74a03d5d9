package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func Contact() fiber.Handler {
	return body[model.ContactInput]("contactInput")
}
