//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/review"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/clock"
	"easebooking/internal/pkg/errs"
	"easebooking/tests/common/builder"
)

type fakeReviewGateway struct {
	err        error
	calls      int
	lastParams CreateReviewParams
}

func (f *fakeReviewGateway) CreateReview(_ context.Context, _ string, params CreateReviewParams) error {
	f.calls++
	f.lastParams = params
	return f.err
}

type fakeBookingReader struct {
	bookings []*booking.Booking
	err      error
}

func (f *fakeBookingReader) ListMyBookings(context.Context, string) ([]*booking.Booking, error) {
	return f.bookings, f.err
}

func reviewSetup(bookings []*booking.Booking) (*fakeReviewGateway, ReviewCommands) {
	gw := &fakeReviewGateway{}
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	return gw, NewReviewCommands(gw, &fakeBookingReader{bookings: bookings}, clk)
}

func TestCreateReview_EligibleVisitorSubmits(t *testing.T) {
	paidPast := builder.NewBookingBuilder().
		WithPlaceID(10).
		WithPaid(true).
		WithVisitDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)).
		Build()
	gw, cmds := reviewSetup([]*booking.Booking{paidPast})

	err := cmds.CreateReview(context.Background(), visitorSession(), CreateReviewRequest{
		PlaceID: 10,
		Rating:  4,
		Comment: "Great guided tour.",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, int64(10), gw.lastParams.PlaceID)
	assert.Equal(t, 4, gw.lastParams.Rating.Value())
	assert.Equal(t, "Great guided tour.", gw.lastParams.Comment.String())
}

func TestCreateReview_EligibilityRecheckedAtSubmitTime(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*booking.Booking
	}{
		{"no bookings at all", nil},
		{
			"unpaid past visit",
			[]*booking.Booking{builder.NewBookingBuilder().
				WithPlaceID(10).
				WithVisitDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)).
				Build()},
		},
		{
			"paid future visit",
			[]*booking.Booking{builder.NewBookingBuilder().
				WithPlaceID(10).
				WithPaid(true).
				WithVisitDate(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)).
				Build()},
		},
		{
			"paid past visit to another place",
			[]*booking.Booking{builder.NewBookingBuilder().
				WithPlaceID(99).
				WithPaid(true).
				WithVisitDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)).
				Build()},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, cmds := reviewSetup(tt.bookings)

			err := cmds.CreateReview(context.Background(), visitorSession(), CreateReviewRequest{
				PlaceID: 10,
				Rating:  5,
				Comment: "Nice.",
			})

			assert.ErrorIs(t, err, errs.ErrReviewNotEligible)
			assert.Zero(t, gw.calls)
		})
	}
}

func TestCreateReview_ValidationBeforeBackend(t *testing.T) {
	tests := []struct {
		name    string
		rating  int
		comment string
		wantErr error
	}{
		{"rating too low", 0, "fine", review.ErrInvalidRating},
		{"rating too high", 6, "fine", review.ErrInvalidRating},
		{"empty comment", 3, "   ", review.ErrEmptyComment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, cmds := reviewSetup(nil)

			err := cmds.CreateReview(context.Background(), visitorSession(), CreateReviewRequest{
				PlaceID: 10,
				Rating:  tt.rating,
				Comment: tt.comment,
			})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, gw.calls)
		})
	}
}

func TestCreateReview_SessionExpiredWhileListingBookings(t *testing.T) {
	gw := &fakeReviewGateway{}
	clk := clock.NewMockClock(time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC))
	reader := &fakeBookingReader{err: infra.GatewayError{Kind: infra.KindUnauthorized}}
	cmds := NewReviewCommands(gw, reader, clk)

	err := cmds.CreateReview(context.Background(), visitorSession(), CreateReviewRequest{
		PlaceID: 10, Rating: 4, Comment: "ok",
	})

	assert.ErrorIs(t, err, errs.ErrSessionExpired)
	assert.Zero(t, gw.calls)
}
