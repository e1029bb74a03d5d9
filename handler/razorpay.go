package handler

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"hotel_manager/model"
)

func razorpayConfig() model.RazorpayConfig {
	baseURL := os.Getenv("RAZORPAY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com/v1"
	}
	return model.RazorpayConfig{
		KeyId:     os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		BaseURL:   baseURL,
	}
}

var gatewayClient = &http.Client{Timeout: 10 * time.Second}

// CreateGatewayOrder opens an order at the gateway for the given amount.
// Amount is converted to the smallest currency unit.
func CreateGatewayOrder(cfg model.RazorpayConfig, total float64, receipt string) (*model.OrderResponse, error) {
	orderReq := model.OrderRequest{
		Amount:   int64(math.Round(total * 100)),
		Currency: "INR",
		Receipt:  receipt,
	}
	payload, err := json.Marshal(orderReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, cfg.BaseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(cfg.KeyId, cfg.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := gatewayClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var order model.OrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

// VerifyPaymentSignature checks the gateway's HMAC over
// "order_id|payment_id". Any mismatch or missing field fails closed.
func VerifyPaymentSignature(secret, orderId, paymentId, signature string) bool {
	if secret == "" || orderId == "" || paymentId == "" || signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderId + "|" + paymentId))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
