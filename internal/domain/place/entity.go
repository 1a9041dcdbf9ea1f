package place

import (
	"errors"
	"sort"

	"easebooking/internal/domain/booking"
)

var ErrInvalidPlace = errors.New("invalid place")

type Image struct {
	URL       string
	SortOrder int
}

type Review struct {
	ReviewID   int64
	Rating     int
	Comment    string
	CreatedAt  string
	AuthorName string
}

// Place is a read-side snapshot of a bookable listing as served by the
// backend. Images are held in ascending sort order; callers may rely
// on that invariant when rendering.
type Place struct {
	id          int64
	name        string
	description string
	location    string
	timings     string
	price       booking.Money
	imageURL    string
	mapsURL     string
	images      []Image
	reviews     []Review
}

func Reconstruct(
	id int64,
	name, description, location, timings string,
	price booking.Money,
	imageURL, mapsURL string,
	images []Image,
	reviews []Review,
) *Place {
	sorted := make([]Image, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortOrder < sorted[j].SortOrder
	})
	return &Place{
		id:          id,
		name:        name,
		description: description,
		location:    location,
		timings:     timings,
		price:       price,
		imageURL:    imageURL,
		mapsURL:     mapsURL,
		images:      sorted,
		reviews:     reviews,
	}
}

func (p *Place) ID() int64            { return p.id }
func (p *Place) Name() string         { return p.name }
func (p *Place) Description() string  { return p.description }
func (p *Place) Location() string     { return p.location }
func (p *Place) Timings() string      { return p.timings }
func (p *Place) Price() booking.Money { return p.price }
func (p *Place) MapsURL() string      { return p.mapsURL }
func (p *Place) Reviews() []Review    { return p.reviews }

// ImageURLs returns gallery URLs in ascending sort order, falling back
// to the legacy single-image field when no gallery exists.
func (p *Place) ImageURLs() []string {
	if len(p.images) > 0 {
		urls := make([]string, len(p.images))
		for i, img := range p.images {
			urls[i] = img.URL
		}
		return urls
	}
	if p.imageURL != "" {
		return []string{p.imageURL}
	}
	return nil
}

// Snapshot denormalizes the display fields a booking carries.
func (p *Place) Snapshot() booking.PlaceSnapshot {
	thumb := ""
	if urls := p.ImageURLs(); len(urls) > 0 {
		thumb = urls[0]
	}
	return booking.PlaceSnapshot{
		PlaceID:      p.id,
		Name:         p.name,
		Price:        p.price,
		ThumbnailURL: thumb,
		MapsURL:      p.mapsURL,
	}
}
