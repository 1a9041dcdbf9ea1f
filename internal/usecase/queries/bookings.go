package queries

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/review"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/clock"
	"easebooking/internal/pkg/errs"
	"easebooking/internal/usecase/shared"
)

// BookingStore caches each visitor's booking list between backend
// round trips. A refresh replaces the whole entry; there are no
// partial updates, so readers always see one coherent generation.
type BookingStore struct {
	mu     sync.RWMutex
	byUser map[int64][]*booking.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{byUser: make(map[int64][]*booking.Booking)}
}

func (s *BookingStore) Replace(userID int64, bookings []*booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = bookings
}

func (s *BookingStore) Snapshot(userID int64) ([]*booking.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cached, ok := s.byUser[userID]
	if !ok {
		return nil, false
	}
	out := make([]*booking.Booking, len(cached))
	copy(out, cached)
	return out, true
}

func (s *BookingStore) Evict(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}

type bookingQueriesImpl struct {
	reader BookingReader
	store  *BookingStore
	clock  clock.Clock
}

func NewBookingQueries(reader BookingReader, store *BookingStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		reader: reader,
		store:  store,
		clock:  clk,
	}
}

// Refresh replaces the caller's cached booking list with the backend's
// current state. On failure the cache keeps its previous generation.
func (q *bookingQueriesImpl) Refresh(ctx context.Context, sess shared.Session) error {
	bookings, err := q.reader.ListMyBookings(ctx, sess.Token)
	if err != nil {
		return classifyReadErr(err)
	}
	q.store.Replace(sess.UserID, bookings)
	return nil
}

// VisitorDashboard partitions the caller's bookings into an upcoming
// list (today's visits included) and a past list. A failed refresh
// falls back to the cached generation when one exists; session
// expiry never does.
func (q *bookingQueriesImpl) VisitorDashboard(ctx context.Context, sess shared.Session) (*VisitorDashboardView, error) {
	bookings, err := q.freshOrCached(ctx, sess)
	if err != nil {
		return nil, err
	}

	today := clock.Today(q.clock)
	view := &VisitorDashboardView{
		Upcoming: []BookingView{},
		Past:     []BookingView{},
	}
	for _, b := range bookings {
		row := toBookingView(b, today)
		if b.BucketAt(today) == booking.BucketPast {
			view.Past = append(view.Past, row)
		} else {
			view.Upcoming = append(view.Upcoming, row)
		}
	}
	// Upcoming soonest first, past most recent first.
	sort.SliceStable(view.Upcoming, func(i, j int) bool {
		return view.Upcoming[i].VisitDate < view.Upcoming[j].VisitDate
	})
	sort.SliceStable(view.Past, func(i, j int) bool {
		return view.Past[i].VisitDate > view.Past[j].VisitDate
	})
	return view, nil
}

// ReviewEligibility derives the caller's standing toward reviewing a
// place from a fresh booking list. When the backend is unreachable the
// answer degrades to not eligible rather than failing the page.
func (q *bookingQueriesImpl) ReviewEligibility(ctx context.Context, sess shared.Session, placeID int64) (*EligibilityView, error) {
	bookings, err := q.reader.ListMyBookings(ctx, sess.Token)
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthorized) {
			return nil, errs.Mark(err, errs.ErrSessionExpired)
		}
		slog.Warn("eligibility fetch failed, degrading to not eligible",
			slog.Int64("place_id", placeID), slog.String("error", err.Error()))
		return &EligibilityView{PlaceID: placeID, Eligibility: review.NotEligible.String()}, nil
	}
	q.store.Replace(sess.UserID, bookings)

	result := review.Evaluate(placeID, bookings, clock.Today(q.clock))
	return &EligibilityView{PlaceID: placeID, Eligibility: result.String()}, nil
}

func (q *bookingQueriesImpl) freshOrCached(ctx context.Context, sess shared.Session) ([]*booking.Booking, error) {
	bookings, err := q.reader.ListMyBookings(ctx, sess.Token)
	if err == nil {
		q.store.Replace(sess.UserID, bookings)
		return bookings, nil
	}
	if infra.IsKind(err, infra.KindUnauthorized) {
		return nil, errs.Mark(err, errs.ErrSessionExpired)
	}
	if cached, ok := q.store.Snapshot(sess.UserID); ok {
		slog.Warn("booking refresh failed, serving cached generation",
			slog.Int64("user_id", sess.UserID), slog.String("error", err.Error()))
		return cached, nil
	}
	return nil, errs.Mark(err, errs.ErrBackendUnavailable)
}

func toBookingView(b *booking.Booking, today time.Time) BookingView {
	bucket := b.BucketAt(today)
	return BookingView{
		BookingID:        b.ID(),
		PlaceID:          b.PlaceID(),
		PlaceName:        b.Place().Name,
		VisitDate:        b.VisitDate().String(),
		Quantity:         b.Quantity().Value(),
		UnitPriceMinor:   b.Place().Price.Minor(),
		TotalMinor:       b.TotalCost().Minor(),
		PaymentConfirmed: b.PaymentConfirmed(),
		Bucket:           bucket.String(),
		CanPayNow:        !b.PaymentConfirmed() && bucket != booking.BucketPast,
		CanReview:        b.ReviewEligibleAt(today),
		ThumbnailURL:     b.Place().ThumbnailURL,
		MapsURL:          safeMapsURL(b.Place().MapsURL),
	}
}
