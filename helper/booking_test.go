package helper

import (
	"strings"
	"testing"

	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePublicCode(t *testing.T) {
	code := GeneratePublicCode()
	assert.True(t, strings.HasPrefix(code, "BKG-"))
	assert.Len(t, code, 12)
	assert.Equal(t, strings.ToUpper(code), code)
	assert.NotEqual(t, code, GeneratePublicCode())
}

func TestValidateStayRange(t *testing.T) {
	assert.NoError(t, ValidateStayRange(daysFromNow(1), daysFromNow(3)))
	assert.ErrorIs(t, ValidateStayRange(daysFromNow(3), daysFromNow(1)), ErrCheckoutBeforeCheckin)
	assert.ErrorIs(t, ValidateStayRange(daysFromNow(2), daysFromNow(2)), ErrCheckoutBeforeCheckin)
	assert.ErrorIs(t, ValidateStayRange(daysFromNow(-1), daysFromNow(2)), ErrCheckinInPast)
}

func TestBuildBookingItemsSnapshotsCatalogPrices(t *testing.T) {
	db := setupTestDB(t)
	amenity := model.Amenity{Name: "Breakfast", Price: 250}
	spa := model.SpaService{Name: "Sauna Session", Price: 900}
	assert.NoError(t, db.Create(&amenity).Error)
	assert.NoError(t, db.Create(&spa).Error)

	items, err := BuildBookingItems(db, []uint{amenity.ID}, []uint{spa.ID})
	assert.NoError(t, err)
	if assert.Len(t, items, 2) {
		assert.Equal(t, model.ItemAmenity, items[0].Kind)
		assert.Equal(t, "Breakfast", items[0].Name)
		assert.Equal(t, 250.0, items[0].Price)
		assert.Equal(t, model.ItemSpa, items[1].Kind)
		assert.Equal(t, 900.0, items[1].Price)
	}

	// Later catalog edits must not change the snapshotted price.
	assert.NoError(t, db.Model(&amenity).Update("price", 400).Error)
	assert.Equal(t, 250.0, items[0].Price)
}

func TestCheckInBookingGuards(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)

	unpaid := createTestBooking(t, db, guest, room, daysFromNow(0), daysFromNow(2), model.StatusPending)
	assert.ErrorIs(t, CheckInBooking(unpaid), ErrNotPaid)

	early := createTestBooking(t, db, guest, room, daysFromNow(5), daysFromNow(7), model.StatusPending)
	markPaid(t, db, early)
	assert.ErrorIs(t, CheckInBooking(early), ErrTooEarly)

	canceled := createTestBooking(t, db, guest, room, daysFromNow(0), daysFromNow(2), model.StatusCanceled)
	markPaid(t, db, canceled)
	assert.ErrorIs(t, CheckInBooking(canceled), ErrWrongStatusCheckin)
}

func TestCheckInBooking(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)
	booking := createTestBooking(t, db, guest, room, daysFromNow(0), daysFromNow(2), model.StatusPending)
	markPaid(t, db, booking)

	assert.NoError(t, CheckInBooking(booking))
	assert.Equal(t, model.StatusCheckedIn, booking.Status)

	var saved model.Booking
	assert.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, model.StatusCheckedIn, saved.Status)

	var savedRoom model.Room
	assert.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.False(t, savedRoom.IsAvailable, "check-in must take the room out of the pool")
}

func TestCheckOutBooking(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)
	booking := createTestBooking(t, db, guest, room, daysFromNow(-2), daysFromNow(0), model.StatusCheckedIn)
	markPaid(t, db, booking)
	assert.NoError(t, db.Model(&model.Room{}).Where("id = ?", room.ID).Update("is_available", false).Error)

	assert.NoError(t, CheckOutBooking(booking))

	var saved model.Booking
	assert.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, model.StatusCheckedOut, saved.Status)
	assert.True(t, saved.NeedsCleaning)

	var savedRoom model.Room
	assert.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.True(t, savedRoom.IsAvailable, "check-out must return the room to the pool")
}

func TestCheckOutBookingRequiresCheckedIn(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)

	pending := createTestBooking(t, db, guest, room, daysFromNow(1), daysFromNow(3), model.StatusPending)
	assert.ErrorIs(t, CheckOutBooking(pending), ErrWrongStatusCheckout)

	done := createTestBooking(t, db, guest, room, daysFromNow(-5), daysFromNow(-3), model.StatusCheckedOut)
	assert.ErrorIs(t, CheckOutBooking(done), ErrWrongStatusCheckout)
}

func TestCancelBooking(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)

	pending := createTestBooking(t, db, guest, room, daysFromNow(1), daysFromNow(3), model.StatusPending)
	assert.NoError(t, CancelBooking(pending))

	var saved model.Booking
	assert.NoError(t, db.First(&saved, pending.ID).Error)
	assert.Equal(t, model.StatusCanceled, saved.Status)

	checkedIn := createTestBooking(t, db, guest, room, daysFromNow(0), daysFromNow(2), model.StatusCheckedIn)
	assert.ErrorIs(t, CancelBooking(checkedIn), ErrWrongStatusCancel)

	assert.ErrorIs(t, CancelBooking(pending), ErrWrongStatusCancel)
}

func TestMarkNoShows(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)

	missed := createTestBooking(t, db, guest, room, daysFromNow(-3), daysFromNow(-1), model.StatusPending)
	upcoming := createTestBooking(t, db, guest, room, daysFromNow(1), daysFromNow(3), model.StatusPending)
	inHouse := createTestBooking(t, db, guest, room, daysFromNow(-2), daysFromNow(1), model.StatusCheckedIn)
	today := createTestBooking(t, db, guest, room, daysFromNow(0), daysFromNow(2), model.StatusPending)

	count, err := MarkNoShows(db)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	statusOf := func(id uint) string {
		var b model.Booking
		assert.NoError(t, db.First(&b, id).Error)
		return b.Status
	}
	assert.Equal(t, model.StatusNoShow, statusOf(missed.ID))
	assert.Equal(t, model.StatusPending, statusOf(upcoming.ID))
	assert.Equal(t, model.StatusCheckedIn, statusOf(inHouse.ID))
	assert.Equal(t, model.StatusPending, statusOf(today.ID), "check-in day itself is not a no-show")

	count, err = MarkNoShows(db)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count, "sweep is idempotent")
}
