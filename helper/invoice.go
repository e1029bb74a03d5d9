package helper

import (
	"log"
	"time"

	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"
)

// invoiceQueue carries booking IDs whose invoice email should go out.
var invoiceQueue = make(chan uint, 100)

// EnqueueInvoiceEmail queues the invoice send without blocking the
// request. A full queue is only logged; the nightly sweep or a manual
// resend picks the booking up later.
func EnqueueInvoiceEmail(bookingId uint) {
	select {
	case invoiceQueue <- bookingId:
	default:
		log.Printf("invoice queue full, dropping booking %d", bookingId)
	}
}

// StartInvoiceEmailWorker consumes the queue. Sending is idempotent:
// a booking whose invoice_emailed_at is already set is skipped, so
// duplicate enqueues cause no duplicate mail.
func StartInvoiceEmailWorker() {
	go func() {
		for bookingId := range invoiceQueue {
			if err := SendInvoiceForBooking(bookingId); err != nil {
				log.Printf("invoice email for booking %d failed: %v", bookingId, err)
			}
		}
	}()
}

// SendInvoiceForBooking loads the booking, sends the invoice mail and
// stamps invoice_emailed_at on success.
func SendInvoiceForBooking(bookingId uint) error {
	db := database.DB

	var booking model.Booking
	if err := db.Preload("Room").Preload("Items").Preload("User").First(&booking, bookingId).Error; err != nil {
		return err
	}
	if booking.InvoiceEmailedAt != nil {
		return nil
	}
	if booking.User.Email == "" {
		return nil
	}

	if err := utils.SendInvoiceEmail(booking.User.Email, BuildInvoiceData(&booking)); err != nil {
		return err
	}

	now := time.Now()
	return db.Model(&booking).Update("invoice_emailed_at", &now).Error
}

// BuildInvoiceData flattens the booking into the mail layer's data struct.
func BuildInvoiceData(booking *model.Booking) utils.InvoiceEmailData {
	items := make([]utils.InvoiceItemRow, 0, len(booking.Items))
	for _, item := range booking.Items {
		items = append(items, utils.InvoiceItemRow{Name: item.Name, Kind: item.Kind, Price: item.Price})
	}

	paidAt := ""
	if booking.PaidAt != nil {
		paidAt = booking.PaidAt.Format("2006-01-02 15:04")
	}

	nights := Nights(booking.CheckIn, booking.CheckOut)
	return utils.InvoiceEmailData{
		PublicCode:    booking.PublicCode,
		GuestName:     booking.User.Username,
		GuestEmail:    booking.User.Email,
		RoomNumber:    booking.Room.RoomNumber,
		RoomType:      string(booking.Room.Type),
		CheckIn:       booking.CheckIn.String(),
		CheckOut:      booking.CheckOut.String(),
		Nights:        nights,
		PricePerNight: booking.Room.PricePerNight,
		RoomTotal:     Round2(float64(nights) * booking.Room.PricePerNight),
		Items:         items,
		Subtotal:      booking.Subtotal,
		Tax:           booking.Tax,
		Discount:      booking.Discount,
		Total:         booking.Total,
		PaymentMethod: booking.PaymentMethod,
		PaidAt:        paidAt,
	}
}
