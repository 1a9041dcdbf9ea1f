package backend

import (
	"time"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/place"
)

// Wire shapes of the external REST API. Field names follow the
// backend's JSON contract, not this service's conventions.

type placePayload struct {
	PlaceID       int64           `json:"placeId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	Timings       string          `json:"timings"`
	Price         int64           `json:"price"`
	ImageURL      string          `json:"imageUrl"`
	GoogleMapsURL string          `json:"googleMapsUrl"`
	Images        []imagePayload  `json:"images"`
	Reviews       []reviewPayload `json:"reviews"`
}

type imagePayload struct {
	URL       string `json:"url"`
	SortOrder int    `json:"sortOrder"`
}

type reviewPayload struct {
	ReviewID  int64  `json:"reviewId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
	User      struct {
		Name string `json:"name"`
	} `json:"user"`
}

type bookingPayload struct {
	BookingID        int64         `json:"bookingId"`
	PlaceID          int64         `json:"placeId"`
	UserID           int64         `json:"userId"`
	VisitDate        string        `json:"visitDate"`
	Quantity         int           `json:"quantity"`
	PaymentConfirmed bool          `json:"paymentConfirmed"`
	Place            *placePayload `json:"place"`
	User             *struct {
		Name string `json:"name"`
	} `json:"user"`
}

func (p placePayload) toDomain() *place.Place {
	images := make([]place.Image, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, place.Image{URL: img.URL, SortOrder: img.SortOrder})
	}
	reviews := make([]place.Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, place.Review{
			ReviewID:   r.ReviewID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
			AuthorName: r.User.Name,
		})
	}
	return place.Reconstruct(
		p.PlaceID, p.Name, p.Description, p.Location, p.Timings,
		booking.NewMoney(p.Price), p.ImageURL, p.GoogleMapsURL,
		images, reviews,
	)
}

func (b bookingPayload) toDomain() (*booking.Booking, error) {
	visitDate, err := parseVisitDate(b.VisitDate)
	if err != nil {
		return nil, err
	}
	qty, err := booking.NewQuantity(b.Quantity)
	if err != nil {
		return nil, err
	}

	placeID := b.PlaceID
	snapshot := booking.PlaceSnapshot{PlaceID: placeID}
	if b.Place != nil {
		snapshot = b.Place.toDomain().Snapshot()
		if placeID == 0 {
			placeID = snapshot.PlaceID
		}
	}

	visitorName := ""
	if b.User != nil {
		visitorName = b.User.Name
	}

	return booking.Reconstruct(
		b.BookingID, placeID, b.UserID, visitorName,
		visitDate, qty, b.PaymentConfirmed, snapshot,
	), nil
}

// The backend serializes visit dates either as a bare calendar date or
// as an ISO timestamp; only the day matters either way.
func parseVisitDate(s string) (booking.VisitDate, error) {
	if d, err := booking.ParseVisitDate(s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return booking.VisitDate{}, booking.ErrInvalidVisitDate
	}
	return booking.NewVisitDate(t), nil
}
