package queries

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/place"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/errs"
	"easebooking/internal/usecase/shared"
)

// placeFetchLimit bounds concurrent per-place booking fetches so a
// large portfolio does not stampede the backend.
const placeFetchLimit = 4

type statsQueriesImpl struct {
	places   PlaceReader
	bookings BookingReader
}

func NewStatsQueries(places PlaceReader, bookings BookingReader) StatsQueries {
	return &statsQueriesImpl{places: places, bookings: bookings}
}

// OwnerDashboard aggregates bookings and revenue across the caller's
// places. Every booking counts toward visitor totals; revenue counts
// confirmed payments only. Places are fetched
// concurrently; one place failing to load zeroes that place and flags
// it without dropping the rest, while an expired session aborts the
// whole dashboard.
func (q *statsQueriesImpl) OwnerDashboard(ctx context.Context, sess shared.Session) (*OwnerDashboardView, error) {
	owned, err := q.places.ListMyPlaces(ctx, sess.Token)
	if err != nil {
		return nil, classifyReadErr(err)
	}

	stats := make([]PlaceStats, len(owned))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(placeFetchLimit)
	for i, p := range owned {
		g.Go(func() error {
			s, err := q.placeStats(gctx, sess.Token, p)
			if err != nil {
				if infra.IsKind(err, infra.KindUnauthorized) {
					return errs.Mark(err, errs.ErrSessionExpired)
				}
				slog.Warn("place stats fetch failed",
					slog.Int64("place_id", p.ID()), slog.String("error", err.Error()))
				s = PlaceStats{
					PlaceID:     p.ID(),
					Name:        p.Name(),
					Location:    p.Location(),
					Timings:     p.Timings(),
					Description: p.Description(),
					FetchFailed: true,
				}
			}
			stats[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Totals are sums over per-place results, so fetch order cannot
	// change them; failed places contribute nothing.
	view := &OwnerDashboardView{Places: stats}
	for _, s := range stats {
		if s.FetchFailed {
			continue
		}
		view.TotalVisitors += s.TotalBookings
		view.TotalRevenueMinor += s.RevenueMinor
	}
	sort.SliceStable(view.Places, func(i, j int) bool {
		return view.Places[i].PlaceID < view.Places[j].PlaceID
	})
	return view, nil
}

func (q *statsQueriesImpl) placeStats(ctx context.Context, token string, p *place.Place) (PlaceStats, error) {
	rows, err := q.bookings.ListPlaceBookings(ctx, token, p.ID())
	if err != nil {
		return PlaceStats{}, err
	}
	s := PlaceStats{
		PlaceID:     p.ID(),
		Name:        p.Name(),
		Location:    p.Location(),
		Timings:     p.Timings(),
		Description: p.Description(),
	}
	// Every booking counts toward the table; only confirmed payments
	// count toward revenue.
	revenue := booking.NewMoney(0)
	for _, b := range rows {
		s.TotalBookings++
		if b.PaymentConfirmed() {
			revenue = revenue.Add(b.TotalCost())
		}
	}
	s.RevenueMinor = revenue.Minor()
	return s, nil
}
