package response

import "easebooking/internal/usecase/commands"

// CheckoutSessionResponse is everything the browser needs to open the
// provider's checkout UI for a freshly created booking.
type CheckoutSessionResponse struct {
	AttemptID   string `json:"attemptId"`
	State       string `json:"state"`
	BookingID   int64  `json:"bookingId"`
	OrderID     string `json:"orderId"`
	AmountMinor int64  `json:"amountMinor"`
	Currency    string `json:"currency"`
	Key         string `json:"key"`
	Merchant    string `json:"merchant"`
	Description string `json:"description"`
}

func FromStartAttempt(result *commands.StartAttemptResult) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		AttemptID:   result.AttemptID.String(),
		State:       string(result.State),
		BookingID:   result.Session.BookingID,
		OrderID:     result.Session.OrderID,
		AmountMinor: result.Session.Amount.Minor(),
		Currency:    result.Session.Currency,
		Key:         result.Session.PublicKey,
		Merchant:    result.Session.Merchant,
		Description: result.Session.Description,
	}
}
