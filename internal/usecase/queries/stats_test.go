//go:build unit

package queries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/place"
	"easebooking/internal/infra"
	"easebooking/internal/pkg/errs"
	"easebooking/tests/common/builder"
)

type fakePlaceReader struct {
	places []*place.Place
	err    error
}

func (f *fakePlaceReader) ListPlaces(context.Context, string) ([]*place.Place, error) {
	return f.places, f.err
}

func (f *fakePlaceReader) GetPlace(_ context.Context, _ string, placeID int64) (*place.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.places {
		if p.ID() == placeID {
			return p, nil
		}
	}
	return nil, infra.GatewayError{Kind: infra.KindNotFound}
}

func (f *fakePlaceReader) ListMyPlaces(context.Context, string) ([]*place.Place, error) {
	return f.places, f.err
}

type fakePlaceBookingReader struct {
	byPlace map[int64][]*booking.Booking
	errFor  map[int64]error
}

func (f *fakePlaceBookingReader) ListMyBookings(context.Context, string) ([]*booking.Booking, error) {
	return nil, nil
}

func (f *fakePlaceBookingReader) ListPlaceBookings(_ context.Context, _ string, placeID int64) ([]*booking.Booking, error) {
	if err, ok := f.errFor[placeID]; ok {
		return nil, err
	}
	return f.byPlace[placeID], nil
}

func ownedPlace(id int64, name string, priceMinor int64) *place.Place {
	return place.Reconstruct(id, name, "", "Hyderabad", "9am-6pm",
		booking.NewMoney(priceMinor), "", "", nil, nil)
}

func TestOwnerDashboard_RevenueCountsConfirmedPaymentsOnly(t *testing.T) {
	places := &fakePlaceReader{places: []*place.Place{
		ownedPlace(1, "Fort", 10000),
		ownedPlace(2, "Museum", 30000),
	}}
	bookings := &fakePlaceBookingReader{byPlace: map[int64][]*booking.Booking{
		1: {
			builder.NewBookingBuilder().WithPlaceID(1).WithPaid(true).WithPriceMinor(10000).Build(),
			builder.NewBookingBuilder().WithPlaceID(1).WithPriceMinor(10000).Build(),
		},
		2: {
			builder.NewBookingBuilder().WithPlaceID(2).WithPaid(true).WithPriceMinor(30000).WithQuantity(3).Build(),
		},
	}}
	q := NewStatsQueries(places, bookings)

	view, err := q.OwnerDashboard(context.Background(), sessionFor(7))

	require.NoError(t, err)
	require.Len(t, view.Places, 2)
	assert.Equal(t, 2, view.Places[0].TotalBookings, "unpaid bookings still count as visitors")
	assert.Equal(t, int64(10000), view.Places[0].RevenueMinor, "unpaid bookings contribute no revenue")
	assert.Equal(t, int64(90000), view.Places[1].RevenueMinor)
	assert.Equal(t, 3, view.TotalVisitors)
	assert.Equal(t, int64(100000), view.TotalRevenueMinor)
}

func TestOwnerDashboard_UnconfirmedBookingCountsButEarnsNothing(t *testing.T) {
	places := &fakePlaceReader{places: []*place.Place{
		ownedPlace(1, "Fort", 200),
		ownedPlace(2, "Museum", 100),
	}}
	bookings := &fakePlaceBookingReader{byPlace: map[int64][]*booking.Booking{
		1: {builder.NewBookingBuilder().WithPlaceID(1).WithPaid(true).WithPriceMinor(200).Build()},
		2: {builder.NewBookingBuilder().WithPlaceID(2).WithPriceMinor(100).WithQuantity(3).Build()},
	}}
	q := NewStatsQueries(places, bookings)

	view, err := q.OwnerDashboard(context.Background(), sessionFor(7))

	require.NoError(t, err)
	require.Len(t, view.Places, 2)
	assert.Equal(t, 1, view.Places[0].TotalBookings)
	assert.Equal(t, 1, view.Places[1].TotalBookings)
	assert.Zero(t, view.Places[1].RevenueMinor)
	assert.Equal(t, 2, view.TotalVisitors)
	assert.Equal(t, int64(200), view.TotalRevenueMinor)
}

func TestOwnerDashboard_TotalsIndependentOfPlaceOrder(t *testing.T) {
	byPlace := map[int64][]*booking.Booking{
		1: {builder.NewBookingBuilder().WithPlaceID(1).WithPaid(true).WithPriceMinor(10000).Build()},
		2: {builder.NewBookingBuilder().WithPlaceID(2).WithPaid(true).WithPriceMinor(20000).Build()},
		3: {builder.NewBookingBuilder().WithPlaceID(3).WithPaid(true).WithPriceMinor(30000).Build()},
	}
	forward := []*place.Place{ownedPlace(1, "A", 10000), ownedPlace(2, "B", 20000), ownedPlace(3, "C", 30000)}
	reversed := []*place.Place{forward[2], forward[1], forward[0]}

	for _, owned := range [][]*place.Place{forward, reversed} {
		q := NewStatsQueries(&fakePlaceReader{places: owned}, &fakePlaceBookingReader{byPlace: byPlace})

		view, err := q.OwnerDashboard(context.Background(), sessionFor(7))

		require.NoError(t, err)
		assert.Equal(t, int64(60000), view.TotalRevenueMinor)
		assert.Equal(t, 3, view.TotalVisitors)
		assert.Equal(t, int64(1), view.Places[0].PlaceID, "rows come back in a stable order")
	}
}

func TestOwnerDashboard_OnePlaceFailingDoesNotSinkTheRest(t *testing.T) {
	places := &fakePlaceReader{places: []*place.Place{
		ownedPlace(1, "Fort", 10000),
		ownedPlace(2, "Museum", 30000),
	}}
	bookings := &fakePlaceBookingReader{
		byPlace: map[int64][]*booking.Booking{
			2: {builder.NewBookingBuilder().WithPlaceID(2).WithPaid(true).WithPriceMinor(30000).Build()},
		},
		errFor: map[int64]error{1: infra.GatewayError{Kind: infra.KindRemoteFailure}},
	}
	q := NewStatsQueries(places, bookings)

	view, err := q.OwnerDashboard(context.Background(), sessionFor(7))

	require.NoError(t, err)
	require.Len(t, view.Places, 2)
	assert.True(t, view.Places[0].FetchFailed)
	assert.Zero(t, view.Places[0].RevenueMinor)
	assert.False(t, view.Places[1].FetchFailed)
	assert.Equal(t, int64(30000), view.TotalRevenueMinor, "failed place contributes nothing to totals")
	assert.Equal(t, 1, view.TotalVisitors)
}

func TestOwnerDashboard_SessionExpiryAbortsWholeDashboard(t *testing.T) {
	t.Run("while listing places", func(t *testing.T) {
		q := NewStatsQueries(
			&fakePlaceReader{err: infra.GatewayError{Kind: infra.KindUnauthorized}},
			&fakePlaceBookingReader{},
		)

		_, err := q.OwnerDashboard(context.Background(), sessionFor(7))

		assert.ErrorIs(t, err, errs.ErrSessionExpired)
	})

	t.Run("while fetching a place's bookings", func(t *testing.T) {
		q := NewStatsQueries(
			&fakePlaceReader{places: []*place.Place{ownedPlace(1, "Fort", 10000)}},
			&fakePlaceBookingReader{errFor: map[int64]error{1: infra.GatewayError{Kind: infra.KindUnauthorized}}},
		)

		_, err := q.OwnerDashboard(context.Background(), sessionFor(7))

		assert.ErrorIs(t, err, errs.ErrSessionExpired)
	})
}

func TestOwnerDashboard_NoPlaces(t *testing.T) {
	q := NewStatsQueries(&fakePlaceReader{}, &fakePlaceBookingReader{})

	view, err := q.OwnerDashboard(context.Background(), sessionFor(7))

	require.NoError(t, err)
	assert.Empty(t, view.Places)
	assert.Zero(t, view.TotalVisitors)
	assert.Zero(t, view.TotalRevenueMinor)
}

func TestPlaceQueries_PlaceBookingsRows(t *testing.T) {
	bookings := &fakePlaceBookingReader{byPlace: map[int64][]*booking.Booking{
		1: {builder.NewBookingBuilder().WithID(5).WithPlaceID(1).WithQuantity(2).WithPaid(true).Build()},
	}}
	q := NewPlaceQueries(&fakePlaceReader{}, bookings)

	rows, err := q.PlaceBookings(context.Background(), sessionFor(7), 1)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(5), rows[0].BookingID)
	assert.Equal(t, "Test Visitor", rows[0].VisitorName)
	assert.Equal(t, 2, rows[0].Quantity)
	assert.True(t, rows[0].PaymentConfirmed)
}

func TestPlaceQueries_GetIncludesOrderedGalleryAndReviews(t *testing.T) {
	p := place.Reconstruct(1, "Fort", "Old fort", "Hyderabad", "9am-6pm",
		booking.NewMoney(10000), "legacy.jpg", "https://maps.google.com/?q=fort",
		[]place.Image{{URL: "b.jpg", SortOrder: 2}, {URL: "a.jpg", SortOrder: 1}},
		[]place.Review{{ReviewID: 1, Rating: 5, Comment: "Lovely", AuthorName: "Asha"}},
	)
	q := NewPlaceQueries(&fakePlaceReader{places: []*place.Place{p}}, &fakePlaceBookingReader{})

	view, err := q.Get(context.Background(), sessionFor(7), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, view.ImageURLs)
	require.Len(t, view.Reviews, 1)
	assert.Equal(t, "Asha", view.Reviews[0].AuthorName)
	assert.Equal(t, int64(10000), view.PriceMinor)
	assert.Equal(t, "https://maps.google.com/?q=fort", view.MapsURL)
}

func TestPlaceQueries_GetDropsUnrecognizedMapsLink(t *testing.T) {
	p := place.Reconstruct(2, "Museum", "City museum", "Pune", "10am-5pm",
		booking.NewMoney(20000), "", "https://example.com/maps", nil, nil)
	q := NewPlaceQueries(&fakePlaceReader{places: []*place.Place{p}}, &fakePlaceBookingReader{})

	view, err := q.Get(context.Background(), sessionFor(7), 2)

	require.NoError(t, err)
	assert.Empty(t, view.MapsURL)
}

func TestPlaceQueries_GetUnknownPlace(t *testing.T) {
	q := NewPlaceQueries(&fakePlaceReader{}, &fakePlaceBookingReader{})

	_, err := q.Get(context.Background(), sessionFor(7), 404)

	assert.ErrorIs(t, err, errs.ErrPlaceNotFound)
}
