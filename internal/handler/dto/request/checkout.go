package request

// CheckoutCallbackRequest carries the provider's payment callback
// values. They are forwarded to the backend verbatim; this service
// never inspects the signature.
type CheckoutCallbackRequest struct {
	BookingID int64  `json:"bookingId" binding:"required"`
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type CheckoutDismissRequest struct {
	BookingID int64 `json:"bookingId" binding:"required"`
}
