package model

type RazorpayConfig struct {
	KeyId     string
	KeySecret string
	BaseURL   string
}

// OrderRequest is what the gateway expects when creating an order.
// Amount is in paise (INR x 100).
type OrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type OrderResponse struct {
	Id       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type CreatePaymentInput struct {
	BookingId uint `json:"bookingId" validate:"required"`
}

// PaymentCallbackInput is the gateway's browser-side payment assertion.
type PaymentCallbackInput struct {
	OrderId   string `json:"razorpay_order_id" form:"razorpay_order_id" validate:"required"`
	PaymentId string `json:"razorpay_payment_id" form:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" form:"razorpay_signature" validate:"required"`
}
