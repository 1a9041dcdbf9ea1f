package place

import (
	"errors"
	"net/url"
	"strings"

	"easebooking/internal/domain/booking"
)

var ErrUnrecognizedMapsURL = errors.New("link does not resolve to a recognized maps provider")

// MaxListingPriceMinor caps what an owner may charge per ticket.
const MaxListingPriceMinor int64 = 10_000_000

var (
	ErrNameTooShort        = errors.New("name must be at least 2 characters")
	ErrDescriptionTooShort = errors.New("description must be at least 10 characters")
	ErrLocationRequired    = errors.New("location is required")
	ErrTimingsRequired     = errors.New("timings are required")
	ErrPriceOutOfRange     = errors.New("price must be between 0 and the listing maximum")
)

// Hosts the backend accepts for the optional map link. Anything else
// is rejected rather than rendered as an outbound link.
var mapsHosts = map[string]bool{
	"maps.google.com": true,
	"www.google.com":  true,
	"google.com":      true,
	"goo.gl":          true,
	"maps.app.goo.gl": true,
}

// Listing is an owner-editable place description, validated before it
// is sent to the backend. Images are managed separately.
type Listing struct {
	name        string
	description string
	location    string
	timings     string
	price       booking.Money
	imageURL    string
	mapsURL     string
}

func (l Listing) Name() string         { return l.name }
func (l Listing) Description() string  { return l.description }
func (l Listing) Location() string     { return l.location }
func (l Listing) Timings() string      { return l.timings }
func (l Listing) Price() booking.Money { return l.price }
func (l Listing) ImageURL() string     { return l.imageURL }
func (l Listing) MapsURL() string      { return l.mapsURL }

// NewListing validates the owner's form fields. PriceMinor is the
// ticket price in minor units; ImageURL and MapsURL are optional.
func NewListing(name, description, location, timings string, priceMinor int64, imageURL, mapsURL string) (Listing, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)
	timings = strings.TrimSpace(timings)

	if len(name) < 2 {
		return Listing{}, ErrNameTooShort
	}
	if len(description) < 10 {
		return Listing{}, ErrDescriptionTooShort
	}
	if location == "" {
		return Listing{}, ErrLocationRequired
	}
	if timings == "" {
		return Listing{}, ErrTimingsRequired
	}
	if priceMinor < 0 || priceMinor > MaxListingPriceMinor {
		return Listing{}, ErrPriceOutOfRange
	}
	if err := ValidateMapsURL(strings.TrimSpace(mapsURL)); err != nil {
		return Listing{}, err
	}

	return Listing{
		name:        name,
		description: description,
		location:    location,
		timings:     timings,
		price:       booking.NewMoney(priceMinor),
		imageURL:    strings.TrimSpace(imageURL),
		mapsURL:     strings.TrimSpace(mapsURL),
	}, nil
}

// ValidateMapsURL accepts an empty link (the field is optional) or a
// link whose host and path identify a known maps provider.
func ValidateMapsURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrUnrecognizedMapsURL
	}
	host := strings.ToLower(u.Host)
	if !mapsHosts[host] {
		return ErrUnrecognizedMapsURL
	}
	switch host {
	case "www.google.com", "google.com":
		if !strings.HasPrefix(u.Path, "/maps") {
			return ErrUnrecognizedMapsURL
		}
	case "goo.gl":
		if !strings.HasPrefix(u.Path, "/maps") {
			return ErrUnrecognizedMapsURL
		}
	}
	return nil
}
