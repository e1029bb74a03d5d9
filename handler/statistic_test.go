package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/middleware"
	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestUser(t, db, "admin1", constants.ROLE_ADMIN)
	guest := createTestUser(t, db, "guest1", constants.ROLE_GUEST)
	room := createTestRoom(t, db, "101", 1000)

	unpaid := createTestBooking(t, db, guest, room, daysFromNow(1), daysFromNow(3), model.StatusPending)
	done := createTestBooking(t, db, guest, room, daysFromNow(-5), daysFromNow(-3), model.StatusCheckedOut)

	assert.NoError(t, db.Create(&model.Feedback{
		UserId: guest.ID, BookingId: done.ID,
		Rating: 2, CleanlinessRating: 2, ServiceRating: 2, FacilitiesRating: 2,
	}).Error)

	app := fiber.New()
	app.Get("/statistic", middleware.Protected(), middleware.Authorize("stats:read"), GetDashboardStats)

	req := httptest.NewRequest("GET", "/statistic", nil)
	req.Header.Set("Authorization", "Bearer "+bearerToken(t, admin))
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, float64(1), body.Data["totalRooms"])
	assert.Equal(t, float64(1), body.Data["unreadFeedback"])
	assert.Equal(t, float64(1), body.Data["lowRatingCount"])
	assert.Equal(t, unpaid.Total, body.Data["unpaidTotal"])
	assert.Equal(t, float64(1), body.Data["pendingBookings"])
}
