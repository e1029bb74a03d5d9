package helper

import (
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/gorm"
)

// blockingStatuses are the statuses that keep a room occupied.
var blockingStatuses = []string{model.StatusPending, model.StatusCheckedIn}

// CountOverlappingBookings counts bookings that collide with the
// half-open range [checkIn, checkOut). A stay ending on checkIn or
// starting on checkOut does not overlap.
func CountOverlappingBookings(db *gorm.DB, roomId uint, checkIn, checkOut utils.CustomDate, excludeBookingId uint) (int64, error) {
	var count int64
	query := db.Model(&model.Booking{}).
		Where("room_id = ?", roomId).
		Where("status IN ?", blockingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeBookingId != 0 {
		query = query.Where("id <> ?", excludeBookingId)
	}
	err := query.Count(&count).Error
	return count, err
}

// HasOpenMaintenance reports whether the room has an open maintenance
// job scheduled today or later. Used to hide rooms from search results;
// a booking taken at the desk may still go through.
func HasOpenMaintenance(db *gorm.DB, roomId uint) (bool, error) {
	var count int64
	err := db.Model(&model.Maintenance{}).
		Where("room_id = ?", roomId).
		Where("is_completed = ?", false).
		Where("scheduled_date >= ?", utils.Today()).
		Count(&count).Error
	return count > 0, err
}

// IsRoomAvailable checks the room flag and the booking overlap rule.
// Call it inside the booking transaction with the room row locked so
// concurrent requests serialize.
func IsRoomAvailable(db *gorm.DB, room *model.Room, checkIn, checkOut utils.CustomDate, excludeBookingId uint) (bool, error) {
	if !room.IsAvailable {
		return false, nil
	}

	overlaps, err := CountOverlappingBookings(db, room.ID, checkIn, checkOut, excludeBookingId)
	if err != nil {
		return false, err
	}
	return overlaps == 0, nil
}

// FindAvailableRooms returns rooms free for the whole range, optionally
// filtered by room type. Rooms awaiting maintenance are hidden here even
// though direct booking does not check maintenance.
func FindAvailableRooms(db *gorm.DB, checkIn, checkOut utils.CustomDate, roomType *model.RoomType) (model.Rooms, error) {
	var rooms model.Rooms
	query := db.Preload("Amenities").Preload("SpaServices").Preload("Images").
		Where("is_available = ?", true)
	if roomType != nil {
		query = query.Where("type = ?", *roomType)
	}
	if err := query.Find(&rooms).Error; err != nil {
		return nil, err
	}

	available := make(model.Rooms, 0, len(rooms))
	for i := range rooms {
		ok, err := IsRoomAvailable(db, &rooms[i], checkIn, checkOut, 0)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		pending, err := HasOpenMaintenance(db, rooms[i].ID)
		if err != nil {
			return nil, err
		}
		if !pending {
			available = append(available, rooms[i])
		}
	}
	return available, nil
}
