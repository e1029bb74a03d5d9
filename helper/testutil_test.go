package helper

import (
	"runtime"
	"testing"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping sqlite test on windows because CGO is disabled")
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	database.Migrate(db)
	database.DB = db
	return db
}

func date(t *testing.T, s string) utils.CustomDate {
	t.Helper()
	d, err := utils.ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func daysFromNow(n int) utils.CustomDate {
	return utils.CustomDate{Time: utils.Today().AddDate(0, 0, n)}
}

func createTestUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()
	user := model.User{
		Username: username,
		Email:    username + "@test.local",
		Password: "x",
		Role:     role,
		Active:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

func createTestRoom(t *testing.T, db *gorm.DB, number string, price float64) *model.Room {
	t.Helper()
	room := model.Room{
		RoomNumber:    number,
		Type:          model.Double,
		PricePerNight: price,
		IsAvailable:   true,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return &room
}

func createTestBooking(t *testing.T, db *gorm.DB, user *model.User, room *model.Room, checkIn, checkOut utils.CustomDate, status string) *model.Booking {
	t.Helper()
	bill := CalculateBill(room.PricePerNight, checkIn, checkOut, nil)
	booking := model.Booking{
		PublicCode: GeneratePublicCode(),
		UserId:     user.ID,
		RoomId:     room.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     1,
		Status:     status,
		Subtotal:   bill.Subtotal,
		Tax:        bill.Tax,
		Total:      bill.Total,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	booking.User = *user
	booking.Room = *room
	return &booking
}

func markPaid(t *testing.T, db *gorm.DB, booking *model.Booking) {
	t.Helper()
	now := time.Now()
	if err := db.Model(booking).Updates(map[string]interface{}{
		"is_paid":        true,
		"payment_method": model.PaymentCash,
		"paid_at":        &now,
	}).Error; err != nil {
		t.Fatalf("failed to mark booking paid: %v", err)
	}
	booking.IsPaid = true
}
