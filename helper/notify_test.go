package helper

import (
	"testing"

	"hotel_manager/constants"
	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateNotificationDedupsWhileUnread(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "manager1", constants.ROLE_MANAGER)

	assert.NoError(t, CreateNotification(db, user.ID, "inventory:1:low_stock", "Low stock: Towels"))
	assert.NoError(t, CreateNotification(db, user.ID, "inventory:1:low_stock", "Low stock: Towels"))

	var count int64
	assert.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateNotificationReArmsAfterRead(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "manager1", constants.ROLE_MANAGER)

	assert.NoError(t, CreateNotification(db, user.ID, "inventory:1:low_stock", "Low stock: Towels"))
	assert.NoError(t, db.Model(&model.Notification{}).
		Where("user_id = ?", user.ID).Update("is_read", true).Error)

	assert.NoError(t, CreateNotification(db, user.ID, "inventory:1:low_stock", "Low stock: Towels"))

	var count int64
	assert.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestCreateNotificationDistinctEventsCoexist(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "manager1", constants.ROLE_MANAGER)

	assert.NoError(t, CreateNotification(db, user.ID, "inventory:1:low_stock", "Low stock: Towels"))
	assert.NoError(t, CreateNotification(db, user.ID, "inventory:2:low_stock", "Low stock: Soap"))

	var count int64
	assert.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestNotifyLowStockFansOutPerManager(t *testing.T) {
	db := setupTestDB(t)
	first := createTestUser(t, db, "manager1", constants.ROLE_MANAGER)
	second := createTestUser(t, db, "manager2", constants.ROLE_MANAGER)
	inactive := createTestUser(t, db, "manager3", constants.ROLE_MANAGER)
	assert.NoError(t, db.Model(inactive).Update("active", false).Error)
	guest := createTestUser(t, db, "guest1", constants.ROLE_GUEST)

	item := model.InventoryItem{Name: "Towels", Quantity: 3, Threshold: 10}
	assert.NoError(t, db.Create(&item).Error)

	NotifyLowStock(&item)

	countFor := func(userId uint) int64 {
		var count int64
		assert.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", userId).Count(&count).Error)
		return count
	}
	assert.Equal(t, int64(1), countFor(first.ID))
	assert.Equal(t, int64(1), countFor(second.ID))
	assert.Equal(t, int64(0), countFor(inactive.ID))
	assert.Equal(t, int64(0), countFor(guest.ID))
}

func TestNotifyBookingCreatedRecipients(t *testing.T) {
	db := setupTestDB(t)
	receptionist := createTestUser(t, db, "receptionist1", constants.ROLE_RECEPTIONIST)
	housekeeper := createTestUser(t, db, "housekeeper1", constants.ROLE_HOUSEKEEPING)
	manager := createTestUser(t, db, "manager1", constants.ROLE_MANAGER)
	guest := createTestUser(t, db, "guest1", constants.ROLE_GUEST)
	room := createTestRoom(t, db, "101", 1000)
	booking := createTestBooking(t, db, guest, room, daysFromNow(1), daysFromNow(3), model.StatusPending)

	NotifyBookingCreated(booking)

	countFor := func(userId uint) int64 {
		var count int64
		assert.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", userId).Count(&count).Error)
		return count
	}
	assert.Equal(t, int64(1), countFor(receptionist.ID))
	assert.Equal(t, int64(1), countFor(housekeeper.ID))
	assert.Equal(t, int64(1), countFor(guest.ID), "the guest gets an in-app confirmation")
	assert.Equal(t, int64(0), countFor(manager.ID))
}

func TestMaintenanceNotificationsTargetHousekeeping(t *testing.T) {
	db := setupTestDB(t)
	housekeeper := createTestUser(t, db, "housekeeper1", constants.ROLE_HOUSEKEEPING)
	manager := createTestUser(t, db, "manager1", constants.ROLE_MANAGER)
	room := createTestRoom(t, db, "101", 1000)
	job := model.Maintenance{RoomId: room.ID, Issue: "AC repair", ScheduledDate: daysFromNow(1)}
	assert.NoError(t, db.Create(&job).Error)

	NotifyMaintenanceCreated(&job)
	NotifyMaintenanceDue(&job)

	countFor := func(userId uint) int64 {
		var count int64
		assert.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", userId).Count(&count).Error)
		return count
	}
	assert.Equal(t, int64(2), countFor(housekeeper.ID))
	assert.Equal(t, int64(0), countFor(manager.ID))
}

func TestNotifyLowStockDedupIsPerRecipient(t *testing.T) {
	db := setupTestDB(t)
	first := createTestUser(t, db, "manager1", constants.ROLE_MANAGER)
	second := createTestUser(t, db, "manager2", constants.ROLE_MANAGER)

	item := model.InventoryItem{Name: "Towels", Quantity: 3, Threshold: 10}
	assert.NoError(t, db.Create(&item).Error)

	NotifyLowStock(&item)

	// First manager reads the alert, the second does not.
	assert.NoError(t, db.Model(&model.Notification{}).
		Where("user_id = ?", first.ID).Update("is_read", true).Error)

	NotifyLowStock(&item)

	countFor := func(userId uint) int64 {
		var count int64
		assert.NoError(t, db.Model(&model.Notification{}).Where("user_id = ?", userId).Count(&count).Error)
		return count
	}
	assert.Equal(t, int64(2), countFor(first.ID), "read alert re-arms for that manager")
	assert.Equal(t, int64(1), countFor(second.ID), "unread alert stays deduped")
}
