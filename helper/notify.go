package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var RedisClient = redis.NewClient(&redis.Options{Addr: redisAddr()})

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// CreateNotification inserts a notification unless the recipient already
// has an unread one for the same event. Reading a notification re-arms
// the rule for that recipient.
func CreateNotification(db *gorm.DB, userId uint, eventKey, message string) error {
	var count int64
	err := db.Model(&model.Notification{}).
		Where("user_id = ? AND event_key = ? AND is_read = ?", userId, eventKey, false).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	notification := model.Notification{UserId: userId, EventKey: eventKey, Message: message}
	if err := db.Create(&notification).Error; err != nil {
		return err
	}

	publishNotification(notification)
	return nil
}

// publishNotification pushes the new notification onto the recipient's
// redis channel for live delivery over websocket.
func publishNotification(n model.Notification) {
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	channel := fmt.Sprintf("notifications:%d", n.UserId)
	if err := RedisClient.Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Printf("failed to publish notification: %v", err)
	}
}

// notifyRole fans the event out to every active user holding the role.
// Dedup applies per recipient, so one manager reading a low-stock alert
// does not suppress it for the others.
func notifyRole(role, eventKey, message string) {
	db := database.DB
	var users []model.User
	if err := db.Where("role = ? AND active = ?", role, true).Find(&users).Error; err != nil {
		log.Printf("failed to load %s users for notification: %v", role, err)
		return
	}
	for _, user := range users {
		if err := CreateNotification(db, user.ID, eventKey, message); err != nil {
			log.Printf("failed to notify user %d: %v", user.ID, err)
		}
	}
}

// NotifyBookingCreated alerts the desk and housekeeping, confirms to
// the guest in-app and emails the confirmation.
func NotifyBookingCreated(booking *model.Booking) {
	eventKey := fmt.Sprintf("booking:%d:created", booking.ID)
	message := fmt.Sprintf("New booking %s for room %s (%s to %s)",
		booking.PublicCode, booking.Room.RoomNumber, booking.CheckIn.String(), booking.CheckOut.String())
	notifyRole(constants.ROLE_RECEPTIONIST, eventKey, message)
	notifyRole(constants.ROLE_HOUSEKEEPING, eventKey, message)

	guestMessage := fmt.Sprintf("Your booking %s is confirmed (%s to %s)",
		booking.PublicCode, booking.CheckIn.String(), booking.CheckOut.String())
	if err := CreateNotification(database.DB, booking.UserId, fmt.Sprintf("booking:%d:confirmed", booking.ID), guestMessage); err != nil {
		log.Printf("failed to notify guest %d: %v", booking.UserId, err)
	}

	if booking.User.Email != "" {
		utils.SendBookingConfirmationEmail(booking.User.Email, utils.BookingConfirmationData{
			PublicCode:    booking.PublicCode,
			GuestName:     booking.User.Username,
			RoomNumber:    booking.Room.RoomNumber,
			RoomType:      string(booking.Room.Type),
			CheckIn:       booking.CheckIn.String(),
			CheckOut:      booking.CheckOut.String(),
			Guests:        booking.Guests,
			TotalAmount:   booking.Total,
			PaymentMethod: booking.PaymentMethod,
			DetailLink:    os.Getenv("FRONTEND_URL") + "/bookings/" + booking.PublicCode,
		})
	}
}

// NotifyNeedsCleaning alerts housekeeping after a check-out.
func NotifyNeedsCleaning(booking *model.Booking) {
	eventKey := fmt.Sprintf("booking:%d:needs_cleaning", booking.ID)
	message := fmt.Sprintf("Room %s needs cleaning after check-out of %s",
		booking.Room.RoomNumber, booking.PublicCode)
	notifyRole(constants.ROLE_HOUSEKEEPING, eventKey, message)
}

// NotifyLowStock alerts managers when an item falls below its threshold.
func NotifyLowStock(item *model.InventoryItem) {
	eventKey := fmt.Sprintf("inventory:%d:low_stock", item.ID)
	message := fmt.Sprintf("Low stock: %s has %d left (threshold %d)",
		item.Name, item.Quantity, item.Threshold)
	notifyRole(constants.ROLE_MANAGER, eventKey, message)
}

// NotifyFeedbackReceived alerts managers about a new review.
func NotifyFeedbackReceived(feedback *model.Feedback) {
	eventKey := fmt.Sprintf("feedback:%d:received", feedback.ID)
	message := fmt.Sprintf("New feedback for booking #%d: %d/5", feedback.BookingId, feedback.Rating)
	notifyRole(constants.ROLE_MANAGER, eventKey, message)
}

// NotifyMaintenanceCreated alerts housekeeping about a new job.
func NotifyMaintenanceCreated(m *model.Maintenance) {
	eventKey := fmt.Sprintf("maintenance:%d:created", m.ID)
	message := fmt.Sprintf("Maintenance scheduled for room #%d: %s (%s)",
		m.RoomId, m.Issue, m.ScheduledDate.String())
	notifyRole(constants.ROLE_HOUSEKEEPING, eventKey, message)
}

// NotifyMaintenanceDue alerts housekeeping when a scheduled job comes due.
func NotifyMaintenanceDue(m *model.Maintenance) {
	eventKey := fmt.Sprintf("maintenance:%d:due", m.ID)
	message := fmt.Sprintf("Maintenance due for room #%d: %s (%s)",
		m.RoomId, m.Issue, m.ScheduledDate.String())
	notifyRole(constants.ROLE_HOUSEKEEPING, eventKey, message)
}
