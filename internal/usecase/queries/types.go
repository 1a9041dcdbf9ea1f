package queries

import (
	"context"

	"easebooking/internal/usecase/shared"
)

// Read models (DTO for read side)

type BookingView struct {
	BookingID        int64  `json:"bookingId"`
	PlaceID          int64  `json:"placeId"`
	PlaceName        string `json:"placeName"`
	VisitDate        string `json:"visitDate"`
	Quantity         int    `json:"quantity"`
	UnitPriceMinor   int64  `json:"unitPriceMinor"`
	TotalMinor       int64  `json:"totalMinor"`
	PaymentConfirmed bool   `json:"paymentConfirmed"`
	Bucket           string `json:"bucket"`
	CanPayNow        bool   `json:"canPayNow"`
	CanReview        bool   `json:"canReview"`
	ThumbnailURL     string `json:"thumbnailUrl,omitempty"`
	MapsURL          string `json:"mapsUrl,omitempty"`
}

type VisitorDashboardView struct {
	Upcoming []BookingView `json:"upcoming"`
	Past     []BookingView `json:"past"`
}

type PlaceSummaryView struct {
	PlaceID     int64  `json:"placeId"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Timings     string `json:"timings"`
	PriceMinor  int64  `json:"priceMinor"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type PlaceDetailView struct {
	PlaceSummaryView
	ImageURLs []string     `json:"imageUrls"`
	MapsURL   string       `json:"mapsUrl,omitempty"`
	Reviews   []ReviewView `json:"reviews"`
}

type ReviewView struct {
	ReviewID   int64  `json:"reviewId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	CreatedAt  string `json:"createdAt"`
	AuthorName string `json:"authorName"`
}

// PlaceBookingRow is one line of the owner's per-place booking table.
type PlaceBookingRow struct {
	BookingID        int64  `json:"bookingId"`
	VisitorName      string `json:"visitorName"`
	VisitDate        string `json:"visitDate"`
	Quantity         int    `json:"quantity"`
	PaymentConfirmed bool   `json:"paymentConfirmed"`
}

// PlaceStats is derived, never persisted: recomputed on every owner
// dashboard load.
type PlaceStats struct {
	PlaceID       int64  `json:"placeId"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Timings       string `json:"timings"`
	Description   string `json:"description"`
	TotalBookings int    `json:"totalBookings"`
	RevenueMinor  int64  `json:"revenueMinor"`
	// FetchFailed marks a place whose booking fetch failed; its zeroed
	// stats are excluded from the totals rather than corrupting them.
	FetchFailed bool `json:"fetchFailed,omitempty"`
}

type OwnerDashboardView struct {
	Places            []PlaceStats `json:"places"`
	TotalVisitors     int          `json:"totalVisitors"`
	TotalRevenueMinor int64        `json:"totalRevenueMinor"`
}

type EligibilityView struct {
	PlaceID     int64  `json:"placeId"`
	Eligibility string `json:"eligibility"`
}

type BookingQueries interface {
	Refresh(ctx context.Context, sess shared.Session) error
	VisitorDashboard(ctx context.Context, sess shared.Session) (*VisitorDashboardView, error)
	ReviewEligibility(ctx context.Context, sess shared.Session, placeID int64) (*EligibilityView, error)
}

type PlaceQueries interface {
	List(ctx context.Context, sess shared.Session) ([]PlaceSummaryView, error)
	Get(ctx context.Context, sess shared.Session, placeID int64) (*PlaceDetailView, error)
	PlaceBookings(ctx context.Context, sess shared.Session, placeID int64) ([]PlaceBookingRow, error)
}

type StatsQueries interface {
	OwnerDashboard(ctx context.Context, sess shared.Session) (*OwnerDashboardView, error)
}
