package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMaintenance() fiber.Handler {
	return body[model.CreateMaintenanceInput]("createMaintenanceInput")
}
