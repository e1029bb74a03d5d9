package helper

import (
	"testing"

	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConfirmGatewayPayment(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)
	booking := createTestBooking(t, db, guest, room, daysFromNow(1), daysFromNow(3), model.StatusPending)

	// A stale stored total must be refreshed on confirmation.
	assert.NoError(t, db.Model(booking).Updates(map[string]interface{}{
		"payment_order_id": "order_confirm1",
		"total":            0,
	}).Error)

	queued := len(invoiceQueue)

	confirmed, replayed, err := ConfirmGatewayPayment("order_confirm1", "pay_confirm1")
	assert.NoError(t, err)
	assert.False(t, replayed)
	assert.Equal(t, queued+1, len(invoiceQueue), "confirmation must queue the invoice email")

	var saved model.Booking
	assert.NoError(t, db.First(&saved, booking.ID).Error)
	assert.True(t, saved.IsPaid)
	assert.Equal(t, model.PaymentGateway, saved.PaymentMethod)
	assert.Equal(t, "pay_confirm1", saved.GatewayPaymentId)
	assert.NotNil(t, saved.PaidAt)

	bill := CalculateBill(room.PricePerNight, booking.CheckIn, booking.CheckOut, nil)
	assert.Equal(t, bill.Total, saved.Total)
	assert.Equal(t, bill.Tax, saved.Tax)
	assert.Equal(t, confirmed.ID, saved.ID)
}

func TestConfirmGatewayPaymentReplayIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	guest := createTestUser(t, db, "guest1", "guest")
	room := createTestRoom(t, db, "101", 1000)
	booking := createTestBooking(t, db, guest, room, daysFromNow(1), daysFromNow(3), model.StatusPending)
	assert.NoError(t, db.Model(booking).Update("payment_order_id", "order_replay1").Error)

	_, replayed, err := ConfirmGatewayPayment("order_replay1", "pay_replay1")
	assert.NoError(t, err)
	assert.False(t, replayed)

	queued := len(invoiceQueue)
	_, replayed, err = ConfirmGatewayPayment("order_replay1", "pay_replay2")
	assert.NoError(t, err)
	assert.True(t, replayed)
	assert.Equal(t, queued, len(invoiceQueue), "replays must not queue another invoice")

	var saved model.Booking
	assert.NoError(t, db.First(&saved, booking.ID).Error)
	assert.Equal(t, "pay_replay1", saved.GatewayPaymentId, "replay must not overwrite the recorded payment")
}

func TestConfirmGatewayPaymentUnknownOrder(t *testing.T) {
	setupTestDB(t)

	_, _, err := ConfirmGatewayPayment("order_missing", "pay_x")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
