package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestCreateGatewayOrderRoundsAmountToPaise(t *testing.T) {
	var received model.OrderRequest
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(model.OrderResponse{
			Id:       "order_test1",
			Amount:   received.Amount,
			Currency: received.Currency,
			Status:   "created",
		})
	}))
	defer gateway.Close()

	cfg := model.RazorpayConfig{KeyId: "key", KeySecret: "secret", BaseURL: gateway.URL}

	order, err := CreateGatewayOrder(cfg, 2048.18, "BKG-TEST0001")
	assert.NoError(t, err)
	assert.Equal(t, int64(204818), received.Amount)
	assert.Equal(t, "INR", received.Currency)
	assert.Equal(t, "order_test1", order.Id)
}

func signPayment(secret, orderId, paymentId string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderId + "|" + paymentId))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	secret := "test_secret_key"
	orderId := "order_MkW1x9eTzNQ5aB"
	paymentId := "pay_MkW2p7cRdLQ8xY"
	signature := signPayment(secret, orderId, paymentId)

	assert.True(t, VerifyPaymentSignature(secret, orderId, paymentId, signature))
}

func TestVerifyPaymentSignatureRejectsTampering(t *testing.T) {
	secret := "test_secret_key"
	orderId := "order_MkW1x9eTzNQ5aB"
	paymentId := "pay_MkW2p7cRdLQ8xY"
	signature := signPayment(secret, orderId, paymentId)

	// Guaranteed to differ from the genuine hex digest in the last byte.
	tampered := signature[:len(signature)-1] + "0"
	if tampered == signature {
		tampered = signature[:len(signature)-1] + "1"
	}

	assert.False(t, VerifyPaymentSignature(secret, "order_other", paymentId, signature))
	assert.False(t, VerifyPaymentSignature(secret, orderId, "pay_other", signature))
	assert.False(t, VerifyPaymentSignature("wrong_secret", orderId, paymentId, signature))
	assert.False(t, VerifyPaymentSignature(secret, orderId, paymentId, tampered))
}

func TestVerifyPaymentSignatureFailsClosedOnEmptyFields(t *testing.T) {
	secret := "test_secret_key"
	signature := signPayment(secret, "order_x", "pay_x")

	assert.False(t, VerifyPaymentSignature("", "order_x", "pay_x", signature))
	assert.False(t, VerifyPaymentSignature(secret, "", "pay_x", signature))
	assert.False(t, VerifyPaymentSignature(secret, "order_x", "", signature))
	assert.False(t, VerifyPaymentSignature(secret, "order_x", "pay_x", ""))
}
