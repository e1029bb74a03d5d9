package helper

import (
	"math"

	"hotel_manager/model"
	"hotel_manager/utils"
)

// TaxRate applied on the subtotal.
const TaxRate = 0.18

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	if v < 0 {
		return -math.Floor(-v*100+0.5) / 100
	}
	return math.Floor(v*100+0.5) / 100
}

// Nights between two dates. Same-day stays still bill one night.
func Nights(checkIn, checkOut utils.CustomDate) int {
	nights := int(checkOut.Sub(checkIn.Time).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

// CalculateBill derives all billing figures from the room rate and the
// snapshotted line items. Recomputing on unchanged inputs gives the
// same result, so it is safe to call at any point of the lifecycle.
func CalculateBill(pricePerNight float64, checkIn, checkOut utils.CustomDate, items []model.BookingItem) model.BillBreakdown {
	nights := Nights(checkIn, checkOut)
	roomTotal := float64(nights) * pricePerNight

	var amenityTotal, spaTotal float64
	for _, item := range items {
		switch item.Kind {
		case model.ItemAmenity:
			amenityTotal += item.Price
		case model.ItemSpa:
			spaTotal += item.Price
		}
	}

	subtotal := roomTotal + amenityTotal + spaTotal
	tax := Round2(subtotal * TaxRate)
	discount := 0.0
	total := Round2(subtotal + tax - discount)

	return model.BillBreakdown{
		RoomTotal:    Round2(roomTotal),
		AmenityTotal: Round2(amenityTotal),
		SpaTotal:     Round2(spaTotal),
		Subtotal:     Round2(subtotal),
		Tax:          tax,
		Discount:     discount,
		Total:        total,
	}
}
