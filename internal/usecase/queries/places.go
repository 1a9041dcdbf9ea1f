package queries

import (
	"context"

	"easebooking/internal/domain/place"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/errs"
	"easebooking/internal/usecase/shared"
)

type placeQueriesImpl struct {
	places   PlaceReader
	bookings BookingReader
}

func NewPlaceQueries(places PlaceReader, bookings BookingReader) PlaceQueries {
	return &placeQueriesImpl{places: places, bookings: bookings}
}

func (q *placeQueriesImpl) List(ctx context.Context, sess shared.Session) ([]PlaceSummaryView, error) {
	found, err := q.places.ListPlaces(ctx, sess.Token)
	if err != nil {
		return nil, classifyReadErr(err)
	}
	views := make([]PlaceSummaryView, len(found))
	for i, p := range found {
		views[i] = toPlaceSummary(p)
	}
	return views, nil
}

func (q *placeQueriesImpl) Get(ctx context.Context, sess shared.Session, placeID int64) (*PlaceDetailView, error) {
	p, err := q.places.GetPlace(ctx, sess.Token, placeID)
	if err != nil {
		return nil, classifyReadErr(err)
	}
	reviews := make([]ReviewView, len(p.Reviews()))
	for i, r := range p.Reviews() {
		reviews[i] = ReviewView{
			ReviewID:   r.ReviewID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
			AuthorName: r.AuthorName,
		}
	}
	return &PlaceDetailView{
		PlaceSummaryView: toPlaceSummary(p),
		ImageURLs:        p.ImageURLs(),
		MapsURL:          safeMapsURL(p.MapsURL()),
		Reviews:          reviews,
	}, nil
}

// PlaceBookings lists a place's bookings for its owner's management
// table, unconfirmed ones included.
func (q *placeQueriesImpl) PlaceBookings(ctx context.Context, sess shared.Session, placeID int64) ([]PlaceBookingRow, error) {
	found, err := q.bookings.ListPlaceBookings(ctx, sess.Token, placeID)
	if err != nil {
		return nil, classifyReadErr(err)
	}
	rows := make([]PlaceBookingRow, len(found))
	for i, b := range found {
		rows[i] = PlaceBookingRow{
			BookingID:        b.ID(),
			VisitorName:      b.VisitorName(),
			VisitDate:        b.VisitDate().String(),
			Quantity:         b.Quantity().Value(),
			PaymentConfirmed: b.PaymentConfirmed(),
		}
	}
	return rows, nil
}

func toPlaceSummary(p *place.Place) PlaceSummaryView {
	thumb := ""
	if urls := p.ImageURLs(); len(urls) > 0 {
		thumb = urls[0]
	}
	return PlaceSummaryView{
		PlaceID:     p.ID(),
		Name:        p.Name(),
		Location:    p.Location(),
		Timings:     p.Timings(),
		PriceMinor:  p.Price().Minor(),
		Description: p.Description(),
		Thumbnail:   thumb,
	}
}

// safeMapsURL passes a link through only when it points at a
// recognized maps provider.
func safeMapsURL(raw string) string {
	if err := place.ValidateMapsURL(raw); err != nil {
		return ""
	}
	return raw
}

func classifyReadErr(err error) error {
	if infra.IsKind(err, infra.KindUnauthorized) {
		return errs.Mark(err, errs.ErrSessionExpired)
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrPlaceNotFound)
	}
	return errs.Mark(err, errs.ErrBackendUnavailable)
}
