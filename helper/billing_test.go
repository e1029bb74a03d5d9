package helper

import (
	"testing"

	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBillRoomOnly(t *testing.T) {
	checkIn := date(t, "2026-09-01")
	checkOut := date(t, "2026-09-03")

	bill := CalculateBill(1000, checkIn, checkOut, nil)

	assert.Equal(t, 2000.0, bill.RoomTotal)
	assert.Equal(t, 2000.0, bill.Subtotal)
	assert.Equal(t, 360.0, bill.Tax)
	assert.Equal(t, 0.0, bill.Discount)
	assert.Equal(t, 2360.0, bill.Total)
}

func TestCalculateBillWithItems(t *testing.T) {
	checkIn := date(t, "2026-09-01")
	checkOut := date(t, "2026-09-02")

	items := []model.BookingItem{
		{Kind: model.ItemAmenity, Name: "Breakfast", Price: 250},
		{Kind: model.ItemAmenity, Name: "Mini Bar", Price: 400},
		{Kind: model.ItemSpa, Name: "Sauna Session", Price: 900},
	}

	bill := CalculateBill(1800, checkIn, checkOut, items)

	assert.Equal(t, 1800.0, bill.RoomTotal)
	assert.Equal(t, 650.0, bill.AmenityTotal)
	assert.Equal(t, 900.0, bill.SpaTotal)
	assert.Equal(t, 3350.0, bill.Subtotal)
	assert.Equal(t, 603.0, bill.Tax)
	assert.Equal(t, 3953.0, bill.Total)
}

func TestCalculateBillSameDayStayBillsOneNight(t *testing.T) {
	day := date(t, "2026-09-01")

	bill := CalculateBill(1500, day, day, nil)

	assert.Equal(t, 1500.0, bill.RoomTotal)
}

func TestCalculateBillIsDeterministic(t *testing.T) {
	checkIn := date(t, "2026-09-01")
	checkOut := date(t, "2026-09-04")
	items := []model.BookingItem{{Kind: model.ItemSpa, Name: "Aromatherapy", Price: 1800}}

	first := CalculateBill(3500, checkIn, checkOut, items)
	second := CalculateBill(3500, checkIn, checkOut, items)

	assert.Equal(t, first, second)
}

func TestRound2HalfUp(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 1.0, Round2(0.995))
	assert.Equal(t, 2.34, Round2(2.335))
	assert.Equal(t, -0.13, Round2(-0.125))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 2, Nights(date(t, "2026-09-01"), date(t, "2026-09-03")))
	assert.Equal(t, 1, Nights(date(t, "2026-09-01"), date(t, "2026-09-01")))
	assert.Equal(t, 1, Nights(date(t, "2026-09-03"), date(t, "2026-09-01")))
}
