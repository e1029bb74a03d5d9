package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func AssignSalary() fiber.Handler {
	return body[model.AssignSalaryInput]("assignSalaryInput")
}

func MarkAttendance() fiber.Handler {
	return body[model.MarkAttendanceInput]("markAttendanceInput")
}
