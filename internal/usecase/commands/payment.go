package commands

import (
	"context"
	"fmt"
	"log/slog"

	"easebooking/internal/domain/booking"
	"easebooking/internal/infra"
	"easebooking/internal/infra/checkout"
	"easebooking/internal/pkg/clock"
	"easebooking/internal/pkg/config"
	"easebooking/internal/pkg/errs"
	"easebooking/internal/usecase/queries"
	"easebooking/internal/usecase/shared"

	"github.com/google/uuid"
)

// AttemptState tracks one booking attempt through the checkout
// handshake. Requested strictly precedes AwaitingExternalCheckout,
// which strictly precedes any Verifying call.
type AttemptState string

const (
	StateRequested        AttemptState = "requested"
	StateAwaitingCheckout AttemptState = "awaiting_external_checkout"
	StateVerifying        AttemptState = "verifying"
	StateConfirmed        AttemptState = "confirmed"
	StateFailed           AttemptState = "failed"
	StateAbandoned        AttemptState = "abandoned"
)

type StartAttemptRequest struct {
	PlaceID   int64
	VisitDate string
	Quantity  int
}

type ConfirmPaymentRequest struct {
	BookingID int64
	OrderID   string
	PaymentID string
	Signature string
}

// StartAttemptResult carries the checkout session the browser needs
// to open the provider's payment UI.
type StartAttemptResult struct {
	AttemptID uuid.UUID
	State     AttemptState
	Session   *checkout.Session
}

type PaymentCommands interface {
	StartAttempt(ctx context.Context, sess shared.Session, req StartAttemptRequest) (*StartAttemptResult, error)
	ConfirmPayment(ctx context.Context, sess shared.Session, req ConfirmPaymentRequest) error
	DismissCheckout(ctx context.Context, sess shared.Session, bookingID int64) error
	AttemptState(ctx context.Context, sess shared.Session, bookingID int64) (AttemptState, error)
}

type paymentCommandsImpl struct {
	bookings    BookingGateway
	gateway     checkout.Gateway
	completions *checkout.Completions
	store       queries.BookingQueries
	checkoutCfg config.CheckoutConfig
	clock       clock.Clock
}

func NewPaymentCommands(
	bookings BookingGateway,
	gateway checkout.Gateway,
	completions *checkout.Completions,
	store queries.BookingQueries,
	checkoutCfg config.CheckoutConfig,
	clock clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		bookings:    bookings,
		gateway:     gateway,
		completions: completions,
		store:       store,
		checkoutCfg: checkoutCfg,
		clock:       clock,
	}
}

// StartAttempt validates the booking request, creates the
// booking+order pair on the backend and opens a checkout session.
// Validation failures block the attempt before any network call.
// Retrying "Pay Now" goes through here again and always produces a
// fresh booking+order pair; the earlier unconfirmed booking persists.
func (p *paymentCommandsImpl) StartAttempt(ctx context.Context, sess shared.Session, req StartAttemptRequest) (*StartAttemptResult, error) {
	attemptID := uuid.New()

	visitDate, err := booking.ParseVisitDate(req.VisitDate)
	if err != nil {
		return nil, errs.Mark(err, booking.ErrInvalidVisitDate)
	}
	if err := visitDate.ValidateNotPast(p.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrPastVisitDate)
	}
	quantity, err := booking.NewQuantity(req.Quantity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidQuantity)
	}
	if p.checkoutCfg.PublicKey == "" {
		return nil, errs.ErrCheckoutKeyMissing
	}

	// SDK load is idempotent; a failure aborts before the backend is
	// touched, so no booking row is created for a dead checkout.
	if err := p.gateway.Load(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrCheckoutUnavailable)
	}

	slog.Info("payment attempt requested",
		slog.String("attempt_id", attemptID.String()),
		slog.Int64("place_id", req.PlaceID),
		slog.String("visit_date", visitDate.String()),
		slog.String("state", string(StateRequested)),
	)

	order, err := p.bookings.CreateBookingOrder(ctx, sess.Token, CreateBookingOrderParams{
		PlaceID:   req.PlaceID,
		VisitDate: visitDate,
		Quantity:  quantity,
	})
	if err != nil {
		return nil, p.classifyBackendErr(err)
	}

	session, err := p.gateway.Open(ctx, order.BookingID, order.OrderID, order.Amount, order.Currency, bookingDescription(order.BookingID))
	if err != nil {
		// The booking row exists but stays unconfirmed; it remains
		// visible with a "Pay Now" retry affordance.
		return nil, errs.Mark(err, errs.ErrCheckoutUnavailable)
	}

	p.completions.Register(order.BookingID)

	slog.Info("checkout session opened",
		slog.String("attempt_id", attemptID.String()),
		slog.Int64("booking_id", order.BookingID),
		slog.String("order_id", order.OrderID),
		slog.String("state", string(StateAwaitingCheckout)),
	)

	return &StartAttemptResult{
		AttemptID: attemptID,
		State:     StateAwaitingCheckout,
		Session:   session,
	}, nil
}

// ConfirmPayment forwards the provider's callback values to the
// backend verification endpoint. Only a successful round trip flips
// the booking to confirmed; afterwards the store is refreshed so
// buckets and eligibility derive from authoritative state.
func (p *paymentCommandsImpl) ConfirmPayment(ctx context.Context, sess shared.Session, req ConfirmPaymentRequest) error {
	slog.Info("verifying payment",
		slog.Int64("booking_id", req.BookingID),
		slog.String("order_id", req.OrderID),
		slog.String("state", string(StateVerifying)),
	)

	err := p.bookings.VerifyPayment(ctx, sess.Token, VerifyPaymentParams{
		BookingID: req.BookingID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		p.completions.Resolve(req.BookingID, checkout.OutcomeFailed)
		if infra.IsKind(err, infra.KindUnauthorized) {
			return errs.Mark(err, errs.ErrSessionExpired)
		}
		return errs.Mark(err, errs.ErrVerificationRejected)
	}

	p.completions.Resolve(req.BookingID, checkout.OutcomeConfirmed)

	if err := p.store.Refresh(ctx, sess); err != nil {
		// Confirmation already happened; a stale cache is recoverable
		// on the next dashboard load.
		slog.Warn("booking store refresh after confirmation failed",
			slog.Int64("booking_id", req.BookingID), slog.String("error", err.Error()))
	}

	slog.Info("payment confirmed",
		slog.Int64("booking_id", req.BookingID),
		slog.String("state", string(StateConfirmed)),
	)
	return nil
}

// DismissCheckout records that the visitor closed the checkout UI
// without paying. Terminal for the attempt, not an error: the booking
// stays unconfirmed and retryable.
func (p *paymentCommandsImpl) DismissCheckout(_ context.Context, _ shared.Session, bookingID int64) error {
	p.completions.Resolve(bookingID, checkout.OutcomeAbandoned)
	slog.Info("checkout dismissed",
		slog.Int64("booking_id", bookingID),
		slog.String("state", string(StateAbandoned)),
	)
	return nil
}

// AttemptState reports where a checkout attempt stands, letting the
// browser poll instead of trusting its own view of the provider UI.
// An attempt unknown to this process (never started, or started before
// a restart) reads as not found.
func (p *paymentCommandsImpl) AttemptState(_ context.Context, _ shared.Session, bookingID int64) (AttemptState, error) {
	if p.completions.Pending(bookingID) {
		return StateAwaitingCheckout, nil
	}
	outcome, ok := p.completions.Outcome(bookingID)
	if !ok {
		return "", errs.ErrBookingNotFound
	}
	switch outcome {
	case checkout.OutcomeConfirmed:
		return StateConfirmed, nil
	case checkout.OutcomeFailed:
		return StateFailed, nil
	default:
		return StateAbandoned, nil
	}
}

func (p *paymentCommandsImpl) classifyBackendErr(err error) error {
	if infra.IsKind(err, infra.KindUnauthorized) {
		return errs.Mark(err, errs.ErrSessionExpired)
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrPlaceNotFound)
	}
	return errs.Mark(err, errs.ErrBackendUnavailable)
}

func bookingDescription(bookingID int64) string {
	return fmt.Sprintf("Booking #%d", bookingID)
}
