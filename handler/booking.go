package handler

import (
	"errors"
	"strconv"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func isStaff(role string) bool {
	return role == constants.ROLE_ADMIN || role == constants.ROLE_MANAGER || role == constants.ROLE_RECEPTIONIST
}

func loadBooking(c *fiber.Ctx) (*model.Booking, error) {
	id := c.Locals("inputId").(int)
	var booking model.Booking
	err := database.DB.Preload("Room").Preload("Items").Preload("User").First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetBookings lists bookings for the desk, with status and date filters.
func GetBookings(c *fiber.Ctx) error {
	var bookings model.Bookings
	var total int64
	db := database.DB
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))

	if page < 1 {
		page = 1
	}

	query := db.Model(&model.Booking{}).Preload("Room").Preload("Items").Preload("User")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if roomId := c.Query("roomId"); roomId != "" {
		query = query.Where("room_id = ?", roomId)
	}
	if date := c.Query("checkIn"); date != "" {
		query = query.Where("check_in = ?", date)
	}

	if err := query.Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	query = utils.ApplyPagination(query, &limit, &page)
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	var bookings model.Bookings
	err = database.DB.Preload("Room").Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

func GetBookingById(c *fiber.Ctx) error {
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

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetBookingBill returns the stored breakdown for a booking.
func GetBookingBill(c *fiber.Ctx) error {
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

	bill := helper.CalculateBill(booking.Room.PricePerNight, booking.CheckIn, booking.CheckOut, booking.Items)
	return utils.SuccessResponse(c, fiber.StatusOK, bill)
}

func CreateBooking(c *fiber.Ctx) error {
	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	input, ok := c.Locals("createBookingInput").(model.CreateBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booking, err := helper.CreateBooking(user.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrRoomNotAvailable):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_NOT_AVAILABLE, err)
		case errors.Is(err, helper.ErrCheckoutBeforeCheckin),
			errors.Is(err, helper.ErrCheckinInPast):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Room not found", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

// WalkInBooking registers a desk guest and books in one step, paid offline.
func WalkInBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("walkInBookingInput").(model.WalkInBookingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, nil)
	}

	booking, err := helper.CreateWalkInBooking(input)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrRoomNotAvailable):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROOM_NOT_AVAILABLE, err)
		case errors.Is(err, helper.ErrCheckoutBeforeCheckin):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Room not found", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func CheckIn(c *fiber.Ctx) error {
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

	// A guest can only check in their own stay.
	if user.Role == constants.ROLE_GUEST && booking.UserId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("not your booking"))
	}

	if err := helper.CheckInBooking(booking); err != nil {
		switch {
		case errors.Is(err, helper.ErrNotPaid):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CHECKIN_NOT_PAID, err)
		case errors.Is(err, helper.ErrTooEarly):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CHECKIN_TOO_EARLY, err)
		case errors.Is(err, helper.ErrWrongStatusCheckin):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CHECKIN_WRONG_STATUS, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CheckOut(c *fiber.Ctx) error {
	booking, err := loadBooking(c)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := helper.CheckOutBooking(booking); err != nil {
		if errors.Is(err, helper.ErrWrongStatusCheckout) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CHECKOUT_WRONG_STATUS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

func CancelBooking(c *fiber.Ctx) error {
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

	// Only the guest who owns the stay can release it.
	if booking.UserId != user.ID {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.FORBIDDEN, errors.New("not your booking"))
	}

	if err := helper.CancelBooking(booking); err != nil {
		if errors.Is(err, helper.ErrWrongStatusCancel) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.CANCEL_WRONG_STATUS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// MarkRoomCleaned closes the housekeeping task on a checked-out booking.
func MarkRoomCleaned(c *fiber.Ctx) error {
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

	if !booking.NeedsCleaning {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Room is not waiting for cleaning", errors.New("nothing to clean"))
	}

	now := time.Now()
	err = database.DB.Model(booking).Updates(map[string]interface{}{
		"needs_cleaning": false,
		"cleaned_by_id":  user.ID,
		"cleaned_at":     &now,
	}).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Room marked as cleaned"})
}

// GetCleaningQueue lists checked-out bookings waiting for housekeeping.
func GetCleaningQueue(c *fiber.Ctx) error {
	var bookings model.Bookings
	err := database.DB.Preload("Room").
		Where("needs_cleaning = ?", true).
		Order("updated_at asc").
		Find(&bookings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}
