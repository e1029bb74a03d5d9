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

func GetMaintenance(c *fiber.Ctx) error {
	var jobs []model.Maintenance
	query := database.DB.Preload("Room")
	if completed := c.Query("completed"); completed != "" {
		query = query.Where("is_completed = ?", completed == "true")
	}
	if err := query.Order("scheduled_date asc").Find(&jobs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, jobs)
}

func CreateMaintenance(c *fiber.Ctx) error {
	input, ok := c.Locals("createMaintenanceInput").(model.CreateMaintenanceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	scheduled, err := utils.ParseDate(input.ScheduledDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid scheduledDate", err)
	}

	var room model.Room
	if err := database.DB.First(&room, input.RoomId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Room not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	job := model.Maintenance{
		RoomId:        room.ID,
		Issue:         input.Issue,
		ScheduledDate: scheduled,
	}
	if err := database.DB.Create(&job).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.NotifyMaintenanceCreated(&job)
	return utils.SuccessResponse(c, fiber.StatusCreated, job)
}

func CompleteMaintenance(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var job model.Maintenance
	if err := database.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Maintenance job not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&job).Update("is_completed", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, job)
}

func DeleteMaintenance(c *fiber.Ctx) error {
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.Delete(&model.Maintenance{}, arrayId.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Maintenance jobs deleted", "ids": arrayId.IDs})
}
