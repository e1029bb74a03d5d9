package validate

import (
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return body[model.CreateBookingInput]("createBookingInput")
}

func WalkInBooking() fiber.Handler {
	return body[model.WalkInBookingInput]("walkInBookingInput")
}

func CreatePayment() fiber.Handler {
	return body[model.CreatePaymentInput]("createPaymentInput")
}

func PaymentCallback() fiber.Handler {
	return body[model.PaymentCallbackInput]("paymentCallbackInput")
}
