package helper

import (
	"testing"

	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestCountOverlappingBookings(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)
	createTestBooking(t, db, guest, room, date(t, "2026-09-10"), date(t, "2026-09-13"), model.StatusPending)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int64
	}{
		{"inside existing stay", "2026-09-11", "2026-09-12", 1},
		{"spanning existing stay", "2026-09-09", "2026-09-14", 1},
		{"overlapping the start", "2026-09-08", "2026-09-11", 1},
		{"overlapping the end", "2026-09-12", "2026-09-15", 1},
		{"ends on existing check-in", "2026-09-08", "2026-09-10", 0},
		{"starts on existing check-out", "2026-09-13", "2026-09-15", 0},
		{"fully before", "2026-09-01", "2026-09-05", 0},
		{"fully after", "2026-09-20", "2026-09-22", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			count, err := CountOverlappingBookings(db, room.ID, date(t, tc.checkIn), date(t, tc.checkOut), 0)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, count)
		})
	}
}

func TestCountOverlappingBookingsIgnoresClosedStatuses(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)
	createTestBooking(t, db, guest, room, date(t, "2026-09-10"), date(t, "2026-09-13"), model.StatusCanceled)
	createTestBooking(t, db, guest, room, date(t, "2026-09-10"), date(t, "2026-09-13"), model.StatusCheckedOut)
	createTestBooking(t, db, guest, room, date(t, "2026-09-10"), date(t, "2026-09-13"), model.StatusNoShow)

	count, err := CountOverlappingBookings(db, room.ID, date(t, "2026-09-10"), date(t, "2026-09-13"), 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCountOverlappingBookingsExcludesGivenBooking(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)
	booking := createTestBooking(t, db, guest, room, date(t, "2026-09-10"), date(t, "2026-09-13"), model.StatusPending)

	count, err := CountOverlappingBookings(db, room.ID, date(t, "2026-09-10"), date(t, "2026-09-13"), booking.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestHasOpenMaintenance(t *testing.T) {
	db := setupTestDB(t)
	room := createTestRoom(t, db, "101", 1000)
	job := model.Maintenance{RoomId: room.ID, Issue: "AC repair", ScheduledDate: daysFromNow(3)}
	assert.NoError(t, db.Create(&job).Error)

	pending, err := HasOpenMaintenance(db, room.ID)
	assert.NoError(t, err)
	assert.True(t, pending)

	assert.NoError(t, db.Model(&job).Update("is_completed", true).Error)

	pending, err = HasOpenMaintenance(db, room.ID)
	assert.NoError(t, err)
	assert.False(t, pending, "completed jobs should not hide the room")

	overdue := model.Maintenance{RoomId: room.ID, Issue: "Leaky tap", ScheduledDate: daysFromNow(-2)}
	assert.NoError(t, db.Create(&overdue).Error)

	pending, err = HasOpenMaintenance(db, room.ID)
	assert.NoError(t, err)
	assert.False(t, pending, "only jobs scheduled today or later hide the room")
}

func TestIsRoomAvailable(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)

	ok, err := IsRoomAvailable(db, room, date(t, "2026-09-10"), date(t, "2026-09-13"), 0)
	assert.NoError(t, err)
	assert.True(t, ok)

	createTestBooking(t, db, guest, room, date(t, "2026-09-10"), date(t, "2026-09-13"), model.StatusCheckedIn)

	ok, err = IsRoomAvailable(db, room, date(t, "2026-09-11"), date(t, "2026-09-12"), 0)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestIsRoomAvailableIgnoresMaintenance(t *testing.T) {
	db := setupTestDB(t)
	room := createTestRoom(t, db, "101", 1000)
	job := model.Maintenance{RoomId: room.ID, Issue: "AC repair", ScheduledDate: daysFromNow(3)}
	assert.NoError(t, db.Create(&job).Error)

	// Maintenance hides the room from search only; booking it directly
	// at the desk is still allowed.
	ok, err := IsRoomAvailable(db, room, daysFromNow(2), daysFromNow(5), 0)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestIsRoomAvailableRespectsRoomFlag(t *testing.T) {
	db := setupTestDB(t)
	room := createTestRoom(t, db, "101", 1000)
	room.IsAvailable = false

	ok, err := IsRoomAvailable(db, room, date(t, "2026-09-10"), date(t, "2026-09-13"), 0)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFindAvailableRooms(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	free := createTestRoom(t, db, "101", 1000)
	taken := createTestRoom(t, db, "102", 1200)
	createTestBooking(t, db, guest, taken, date(t, "2026-09-10"), date(t, "2026-09-13"), model.StatusPending)

	rooms, err := FindAvailableRooms(db, date(t, "2026-09-11"), date(t, "2026-09-12"), nil)
	assert.NoError(t, err)
	if assert.Len(t, rooms, 1) {
		assert.Equal(t, free.ID, rooms[0].ID)
	}

	suite := model.Suite
	rooms, err = FindAvailableRooms(db, date(t, "2026-09-11"), date(t, "2026-09-12"), &suite)
	assert.NoError(t, err)
	assert.Len(t, rooms, 0)
}

func TestFindAvailableRoomsHidesRoomsAwaitingMaintenance(t *testing.T) {
	db := setupTestDB(t)
	free := createTestRoom(t, db, "101", 1000)
	underRepair := createTestRoom(t, db, "102", 1200)
	job := model.Maintenance{RoomId: underRepair.ID, Issue: "AC repair", ScheduledDate: daysFromNow(10)}
	assert.NoError(t, db.Create(&job).Error)

	rooms, err := FindAvailableRooms(db, daysFromNow(1), daysFromNow(3), nil)
	assert.NoError(t, err)
	if assert.Len(t, rooms, 1) {
		assert.Equal(t, free.ID, rooms[0].ID)
	}
}
