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

// CreatePaymentOrder opens a gateway order for the booking total and
// stores the order id on the booking.
func CreatePaymentOrder(c *fiber.Ctx) error {
	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	input, ok := c.Locals("createPaymentInput").(model.CreatePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	var booking model.Booking
	if err := database.DB.First(&booking, input.BookingId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.UserId != user.ID && !isStaff(user.Role) {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("not your booking"))
	}
	if booking.IsPaid {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ALREADY_PAID, errors.New("already paid"))
	}
	if booking.Status != model.StatusPending {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Only pending bookings can be paid", errors.New("booking not payable"))
	}

	cfg := razorpayConfig()
	order, err := CreateGatewayOrder(cfg, booking.Total, booking.PublicCode)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Could not create payment order", err)
	}

	if err := database.DB.Model(&booking).Update("payment_order_id", order.Id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderId":  order.Id,
		"amount":   order.Amount,
		"currency": order.Currency,
		"keyId":    cfg.KeyId,
	})
}

// PaymentCallback verifies the gateway signature, marks the booking
// paid with a refreshed bill and queues the invoice email. A bad
// signature never changes booking state.
func PaymentCallback(c *fiber.Ctx) error {
	input, ok := c.Locals("paymentCallbackInput").(model.PaymentCallbackInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	cfg := razorpayConfig()
	if !VerifyPaymentSignature(cfg.KeySecret, input.OrderId, input.PaymentId, input.Signature) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.PAYMENT_VERIFY_FAILED, errors.New("signature mismatch"))
	}

	booking, replayed, err := helper.ConfirmGatewayPayment(input.OrderId, input.PaymentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if replayed {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Payment already recorded"})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":    "Payment verified",
		"publicCode": booking.PublicCode,
	})
}
