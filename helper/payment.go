package helper

import (
	"time"

	"hotel_manager/database"
	"hotel_manager/model"

	"gorm.io/gorm"
)

// ConfirmGatewayPayment marks the booking behind the gateway order paid,
// refreshes the stored bill from the snapshot and queues the invoice
// email. The caller has already verified the gateway signature. A
// replayed callback leaves the booking untouched and reports replayed.
func ConfirmGatewayPayment(orderId, paymentId string) (*model.Booking, bool, error) {
	var booking model.Booking
	replayed := false

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Room").Preload("Items").
			Where("payment_order_id = ?", orderId).First(&booking).Error
		if err != nil {
			return err
		}
		if booking.IsPaid {
			replayed = true
			return nil
		}

		bill := CalculateBill(booking.Room.PricePerNight, booking.CheckIn, booking.CheckOut, booking.Items)
		now := time.Now()
		return tx.Model(&booking).Updates(map[string]interface{}{
			"is_paid":            true,
			"payment_method":     model.PaymentGateway,
			"gateway_payment_id": paymentId,
			"paid_at":            &now,
			"payment_time":       &now,
			"subtotal":           bill.Subtotal,
			"tax":                bill.Tax,
			"discount":           bill.Discount,
			"total":              bill.Total,
		}).Error
	})
	if err != nil {
		return nil, false, err
	}

	if !replayed {
		EnqueueInvoiceEmail(booking.ID)
	}
	return &booking, replayed, nil
}
