package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetInvoice renders the invoice document for a paid booking.
func GetInvoice(c *fiber.Ctx) error {
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

	if !isStaff(user.Role) && booking.UserId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("not your booking"))
	}
	if !booking.IsPaid {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Invoice is only available for paid bookings", errors.New("not paid"))
	}

	html, err := utils.RenderInvoiceHTML(helper.BuildInvoiceData(booking))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "text/html; charset=utf-8")
	return c.SendString(html)
}

// ResendInvoice queues another invoice email. The worker skips bookings
// already stamped, so this only resends when the first attempt failed.
func ResendInvoice(c *fiber.Ctx) error {
	booking, err := loadBooking(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.EnqueueInvoiceEmail(booking.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Invoice email queued"})
}
