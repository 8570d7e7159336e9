package domain

type PaymentPurpose string

const (
	PurposeCheckout     PaymentPurpose = "checkout"
	PurposeCustomOrder  PaymentPurpose = "custom-order"
	PurposeTableBooking PaymentPurpose = "table-booking"
)

// GatewayOrder is what the client needs to open the gateway's checkout widget.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	KeyID    string `json:"key_id,omitempty"`

	Status string            `json:"-"`
	Notes  map[string]string `json:"-"`
}

type PaymentProof struct {
	GatewayOrderID string `json:"razorpay_order_id"`
	PaymentID      string `json:"razorpay_payment_id"`
	Signature      string `json:"razorpay_signature"`
}
