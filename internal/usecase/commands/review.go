package commands

import (
	"context"
	"log/slog"

	"easebooking/internal/domain/review"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/clock"
	"easebooking/internal/pkg/errs"
	"easebooking/internal/usecase/shared"
)

type CreateReviewRequest struct {
	PlaceID int64
	Rating  int
	Comment string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, sess shared.Session, req CreateReviewRequest) error
}

type reviewCommandsImpl struct {
	reviews  ReviewGateway
	bookings BookingReader
	clock    clock.Clock
}

func NewReviewCommands(reviews ReviewGateway, bookings BookingReader, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		reviews:  reviews,
		bookings: bookings,
		clock:    clk,
	}
}

// CreateReview submits a rating for a place the caller has visited.
// Eligibility is re-derived from a fresh booking list at submit time;
// the earlier page-load check is only advisory.
func (r *reviewCommandsImpl) CreateReview(ctx context.Context, sess shared.Session, req CreateReviewRequest) error {
	rating, err := review.NewRating(req.Rating)
	if err != nil {
		return errs.Mark(err, review.ErrInvalidRating)
	}
	comment, err := review.NewComment(req.Comment)
	if err != nil {
		return err
	}

	bookings, err := r.bookings.ListMyBookings(ctx, sess.Token)
	if err != nil {
		return r.classifyBackendErr(err)
	}
	if review.Evaluate(req.PlaceID, bookings, clock.Today(r.clock)) != review.Eligible {
		return errs.ErrReviewNotEligible
	}

	err = r.reviews.CreateReview(ctx, sess.Token, CreateReviewParams{
		PlaceID: req.PlaceID,
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		return r.classifyBackendErr(err)
	}

	slog.Info("review submitted",
		slog.Int64("place_id", req.PlaceID),
		slog.Int("rating", rating.Value()),
	)
	return nil
}

func (r *reviewCommandsImpl) classifyBackendErr(err error) error {
	if infra.IsKind(err, infra.KindUnauthorized) {
		return errs.Mark(err, errs.ErrSessionExpired)
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrPlaceNotFound)
	}
	return errs.Mark(err, errs.ErrBackendUnavailable)
}
