package handler

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/middleware"
	"hotel_manager/model"
	"hotel_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func newCancelApp() *fiber.App {
	app := fiber.New()
	app.Post("/booking/:bookingId/cancel",
		middleware.Protected(), middleware.Authorize("booking:cancel"),
		validate.GetById("bookingId"), CancelBooking)
	return app
}

func TestCancelBookingOnlyOwningGuest(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "guest1", constants.ROLE_GUEST)
	other := createTestUser(t, db, "guest2", constants.ROLE_GUEST)
	receptionist := createTestUser(t, db, "receptionist1", constants.ROLE_RECEPTIONIST)
	room := createTestRoom(t, db, "101", 1000)
	booking := createTestBooking(t, db, owner, room, daysFromNow(2), daysFromNow(4), model.StatusPending)

	app := newCancelApp()
	cancel := func(user *model.User) int {
		req := httptest.NewRequest("POST", fmt.Sprintf("/booking/%d/cancel", booking.ID), nil)
		req.Header.Set("Authorization", "Bearer "+bearerToken(t, user))
		resp, err := app.Test(req)
		assert.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusForbidden, cancel(receptionist), "staff cannot cancel a guest's stay")
	assert.Equal(t, fiber.StatusForbidden, cancel(other), "another guest cannot cancel the stay")

	var saved model.Booking
	assert.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, model.StatusPending, saved.Status)

	assert.Equal(t, fiber.StatusOK, cancel(owner))
	assert.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, model.StatusCanceled, saved.Status)
}
