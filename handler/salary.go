package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AssignSalary sets or updates a staff member's daily rate.
func AssignSalary(c *fiber.Ctx) error {
	_, actor, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	input, ok := c.Locals("assignSalaryInput").(model.AssignSalaryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var staff model.User
	if err := database.DB.First(&staff, input.UserId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if staff.Role == constants.ROLE_GUEST {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Salaries only apply to staff", errors.New("not staff"))
	}

	var salary model.StaffSalary
	err = database.DB.Where(model.StaffSalary{UserId: staff.ID}).
		Assign(model.StaffSalary{DailyRate: input.DailyRate, AssignedById: &actor.ID}).
		FirstOrCreate(&salary).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, salary)
}

func MarkAttendance(c *fiber.Ctx) error {
	input, ok := c.Locals("markAttendanceInput").(model.MarkAttendanceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
	}

	attendance, err := helper.MarkAttendance(database.DB, input.UserId, date, true)
	if err != nil {
		if errors.Is(err, helper.ErrDuplicateAttendance) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_ATTENDANCE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, attendance)
}

// GetSalaryReport computes pay for a month given as "MM-YYYY".
func GetSalaryReport(c *fiber.Ctx) error {
	month := c.Query("month")
	if !utils.IsValidMMYYYY(month) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "month must be in MM-YYYY format", errors.New("invalid month"))
	}

	rows, err := helper.SalaryReport(month)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}
