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

// SubmitFeedback accepts one review per completed stay.
func SubmitFeedback(c *fiber.Ctx) error {
	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	booking, err := loadBooking(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.UserId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("not your booking"))
	}
	if booking.Status != model.StatusCheckedOut {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Feedback is only possible after check-out", errors.New("stay not finished"))
	}

	var count int64
	database.DB.Model(&model.Feedback{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_FEEDBACK, errors.New("duplicate feedback"))
	}

	input, ok := c.Locals("submitFeedbackInput").(model.SubmitFeedbackInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	feedback := model.Feedback{
		UserId:            user.ID,
		BookingId:         booking.ID,
		Rating:            input.Rating,
		CleanlinessRating: input.CleanlinessRating,
		ServiceRating:     input.ServiceRating,
		FacilitiesRating:  input.FacilitiesRating,
		Comment:           input.Comment,
	}
	if err := database.DB.Create(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.NotifyFeedbackReceived(&feedback)
	return utils.SuccessResponse(c, fiber.StatusCreated, feedback)
}

func GetFeedback(c *fiber.Ctx) error {
	var feedback []model.Feedback
	err := database.DB.Preload("User").Preload("Booking").Preload("Booking.Room").
		Order("created_at desc").
		Find(&feedback).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, feedback)
}

func MarkFeedbackRead(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var feedback model.Feedback
	if err := database.DB.First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Feedback not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Model(&feedback).Update("is_read", true).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, feedback)
}
