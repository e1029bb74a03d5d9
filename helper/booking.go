package helper

import (
	"errors"
	"log"
	"strings"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRoomNotAvailable      = errors.New(constants.ROOM_NOT_AVAILABLE)
	ErrCheckoutBeforeCheckin = errors.New(constants.CHECKOUT_BEFORE_CHECKIN)
	ErrCheckinInPast         = errors.New(constants.CHECKIN_IN_PAST)
	ErrNotPaid               = errors.New(constants.CHECKIN_NOT_PAID)
	ErrTooEarly              = errors.New(constants.CHECKIN_TOO_EARLY)
	ErrWrongStatusCheckin    = errors.New(constants.CHECKIN_WRONG_STATUS)
	ErrWrongStatusCheckout   = errors.New(constants.CHECKOUT_WRONG_STATUS)
	ErrWrongStatusCancel     = errors.New(constants.CANCEL_WRONG_STATUS)
)

// GeneratePublicCode builds the short booking reference shown to guests.
func GeneratePublicCode() string {
	return "BKG-" + strings.ToUpper(uuid.New().String()[:8])
}

// BuildBookingItems snapshots the selected amenities and spa services at
// their current catalog price. Later catalog edits never touch these rows.
func BuildBookingItems(db *gorm.DB, amenityIds, spaServiceIds []uint) ([]model.BookingItem, error) {
	var items []model.BookingItem

	if len(amenityIds) > 0 {
		var amenities []model.Amenity
		if err := db.Where("id IN ?", amenityIds).Find(&amenities).Error; err != nil {
			return nil, err
		}
		for _, a := range amenities {
			items = append(items, model.BookingItem{Kind: model.ItemAmenity, Name: a.Name, Price: a.Price})
		}
	}

	if len(spaServiceIds) > 0 {
		var services []model.SpaService
		if err := db.Where("id IN ?", spaServiceIds).Find(&services).Error; err != nil {
			return nil, err
		}
		for _, s := range services {
			items = append(items, model.BookingItem{Kind: model.ItemSpa, Name: s.Name, Price: s.Price})
		}
	}

	return items, nil
}

func ValidateStayRange(checkIn, checkOut utils.CustomDate) error {
	if !checkOut.After(checkIn.Time) {
		return ErrCheckoutBeforeCheckin
	}
	if checkIn.Before(utils.Today().Time) {
		return ErrCheckinInPast
	}
	return nil
}

// CreateBooking runs the availability check and the insert in one
// transaction with the room row locked, so two requests for the same
// room and dates cannot both succeed.
func CreateBooking(userId uint, input model.CreateBookingInput) (*model.Booking, error) {
	checkIn, err := utils.ParseDate(input.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := utils.ParseDate(input.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := ValidateStayRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	guests := input.Guests
	if guests == 0 {
		guests = 1
	}

	var booking *model.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var room model.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, input.RoomId).Error; err != nil {
			return err
		}

		available, err := IsRoomAvailable(tx, &room, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if !available {
			return ErrRoomNotAvailable
		}

		items, err := BuildBookingItems(tx, input.AmenityIds, input.SpaServiceIds)
		if err != nil {
			return err
		}

		bill := CalculateBill(room.PricePerNight, checkIn, checkOut, items)

		booking = &model.Booking{
			PublicCode: GeneratePublicCode(),
			UserId:     userId,
			RoomId:     room.ID,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Guests:     guests,
			Status:     model.StatusPending,
			Items:      items,
			Subtotal:   bill.Subtotal,
			Tax:        bill.Tax,
			Discount:   bill.Discount,
			Total:      bill.Total,
			IdProofUrl: input.IdProofUrl,
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}

	if err := database.DB.Preload("Room").Preload("Items").Preload("User").First(booking, booking.ID).Error; err != nil {
		return nil, err
	}

	NotifyBookingCreated(booking)
	return booking, nil
}

// CreateWalkInBooking registers the guest at the desk and creates the
// booking already paid with the given offline method.
func CreateWalkInBooking(input model.WalkInBookingInput) (*model.Booking, error) {
	checkIn, err := utils.ParseDate(input.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := utils.ParseDate(input.CheckOut)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn.Time) {
		return nil, ErrCheckoutBeforeCheckin
	}

	guests := input.Guests
	if guests == 0 {
		guests = 1
	}

	var booking *model.Booking
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where(&model.User{Username: input.Username}).First(&user).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hashed, err := HashPassword(uuid.New().String()[:12])
			if err != nil {
				return err
			}
			user = model.User{
				Username: input.Username,
				Email:    input.Email,
				Password: hashed,
				Role:     constants.ROLE_GUEST,
				Active:   true,
				Profile: &model.GuestProfile{
					Phone:      input.Phone,
					Address:    input.Address,
					IdProofUrl: input.IdProofUrl,
				},
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		}

		var room model.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, input.RoomId).Error; err != nil {
			return err
		}

		available, err := IsRoomAvailable(tx, &room, checkIn, checkOut, 0)
		if err != nil {
			return err
		}
		if !available {
			return ErrRoomNotAvailable
		}

		items, err := BuildBookingItems(tx, input.AmenityIds, input.SpaServiceIds)
		if err != nil {
			return err
		}

		bill := CalculateBill(room.PricePerNight, checkIn, checkOut, items)
		now := time.Now()

		booking = &model.Booking{
			PublicCode:    GeneratePublicCode(),
			UserId:        user.ID,
			RoomId:        room.ID,
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Guests:        guests,
			Status:        model.StatusPending,
			Items:         items,
			Subtotal:      bill.Subtotal,
			Tax:           bill.Tax,
			Discount:      bill.Discount,
			Total:         bill.Total,
			IsPaid:        true,
			PaymentMethod: input.PaymentMethod,
			PaidAt:        &now,
			IdProofUrl:    input.IdProofUrl,
		}
		return tx.Create(booking).Error
	})
	if err != nil {
		return nil, err
	}

	if err := database.DB.Preload("Room").Preload("Items").Preload("User").First(booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// CheckInBooking enforces the arrival guards and moves the stay to
// Checked In. The room is taken out of the available pool in the same
// transaction. Ownership and role checks happen in the handler.
func CheckInBooking(booking *model.Booking) error {
	if booking.Status != model.StatusPending {
		return ErrWrongStatusCheckin
	}
	if !booking.IsPaid {
		return ErrNotPaid
	}
	if utils.Today().Before(booking.CheckIn.Time) {
		return ErrTooEarly
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(booking).Update("status", model.StatusCheckedIn).Error; err != nil {
			return err
		}
		return tx.Model(&model.Room{}).Where("id = ?", booking.RoomId).
			Update("is_available", false).Error
	})
	if err != nil {
		return err
	}

	booking.Status = model.StatusCheckedIn
	booking.Room.IsAvailable = false
	return nil
}

// CheckOutBooking closes the stay, returns the room to the pool, flags
// it for cleaning and queues the invoice email.
func CheckOutBooking(booking *model.Booking) error {
	if booking.Status != model.StatusCheckedIn {
		return ErrWrongStatusCheckout
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(booking).Updates(map[string]interface{}{
			"status":         model.StatusCheckedOut,
			"needs_cleaning": true,
		}).Error
		if err != nil {
			return err
		}
		return tx.Model(&model.Room{}).Where("id = ?", booking.RoomId).
			Update("is_available", true).Error
	})
	if err != nil {
		return err
	}

	booking.Status = model.StatusCheckedOut
	booking.NeedsCleaning = true
	booking.Room.IsAvailable = true

	NotifyNeedsCleaning(booking)
	EnqueueInvoiceEmail(booking.ID)
	return nil
}

// CancelBooking releases a pending stay.
func CancelBooking(booking *model.Booking) error {
	if booking.Status != model.StatusPending {
		return ErrWrongStatusCancel
	}
	booking.Status = model.StatusCanceled
	return database.DB.Model(booking).Update("status", model.StatusCanceled).Error
}

// MarkNoShows closes out pending bookings whose check-in date has
// passed. Returns how many rows were moved.
func MarkNoShows(db *gorm.DB) (int64, error) {
	result := db.Model(&model.Booking{}).
		Where("status = ?", model.StatusPending).
		Where("check_in < ?", utils.Today()).
		Update("status", model.StatusNoShow)
	return result.RowsAffected, result.Error
}

// StartNoShowScheduler runs the no-show sweep shortly after midnight.
func StartNoShowScheduler() {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	c.AddFunc("15 0 * * *", func() {
		count, err := MarkNoShows(database.DB)
		if err != nil {
			log.Printf("no-show sweep failed: %v", err)
			return
		}
		if count > 0 {
			log.Printf("no-show sweep: closed %d bookings", count)
		}
	})
	c.Start()
}
