package backend

import (
	"context"
	"fmt"

	"easebooking/internal/domain/booking"
	"easebooking/internal/infra"
	"easebooking/internal/usecase/commands"
)

// CreateBookingOrder creates a booking row and a payment order in one
// backend call; the pair is atomic from this service's perspective.
func (c *Client) CreateBookingOrder(ctx context.Context, token string, params commands.CreateBookingOrderParams) (*commands.BookingOrder, error) {
	body := map[string]any{
		"placeId":   params.PlaceID,
		"visitDate": params.VisitDate.String(),
		"quantity":  params.Quantity.Value(),
	}
	var payload struct {
		BookingID int64  `json:"bookingId"`
		OrderID   string `json:"orderId"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
	}
	if err := c.post(ctx, "/Bookings", token, body, &payload); err != nil {
		return nil, err
	}
	return &commands.BookingOrder{
		BookingID: payload.BookingID,
		OrderID:   payload.OrderID,
		Amount:    booking.NewMoney(payload.Amount),
		Currency:  payload.Currency,
	}, nil
}

// VerifyPayment forwards the provider's callback values verbatim. The
// backend owns signature validation; nothing is checked locally.
func (c *Client) VerifyPayment(ctx context.Context, token string, params commands.VerifyPaymentParams) error {
	body := map[string]any{
		"bookingId": params.BookingID,
		"orderId":   params.OrderID,
		"paymentId": params.PaymentID,
		"signature": params.Signature,
	}
	return c.post(ctx, "/Bookings/verifyPayment", token, body, nil)
}

func (c *Client) ListMyBookings(ctx context.Context, token string) ([]*booking.Booking, error) {
	var payload []bookingPayload
	if err := c.get(ctx, "/Bookings/my", token, &payload); err != nil {
		return nil, err
	}
	return c.bookingsToDomain(payload)
}

// ListPlaceBookings returns every booking for one of the caller's
// places, visitors included.
func (c *Client) ListPlaceBookings(ctx context.Context, token string, placeID int64) ([]*booking.Booking, error) {
	var payload []bookingPayload
	if err := c.get(ctx, fmt.Sprintf("/Bookings/place/%d", placeID), token, &payload); err != nil {
		return nil, err
	}
	return c.bookingsToDomain(payload)
}

func (c *Client) bookingsToDomain(payload []bookingPayload) ([]*booking.Booking, error) {
	bookings := make([]*booking.Booking, 0, len(payload))
	for _, b := range payload {
		entity, err := b.toDomain()
		if err != nil {
			return nil, infra.WrapGatewayErr(c.logger, infra.KindDecodeFailure, "map booking payload", "", err)
		}
		bookings = append(bookings, entity)
	}
	return bookings, nil
}
