//go:build unit

package place_test

import (
	"testing"

	"easebooking/internal/domain/booking"
	"easebooking/internal/domain/place"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func reconstruct(images []place.Image, legacyURL string) *place.Place {
	return place.Reconstruct(
		10, "City Museum", "A museum", "Downtown", "9am-5pm",
		booking.NewMoney(50000), legacyURL, "https://maps.google.com/?q=museum",
		images, nil,
	)
}

func TestPlaceImageOrdering(t *testing.T) {
	t.Run("images render in ascending sort order", func(t *testing.T) {
		p := reconstruct([]place.Image{
			{URL: "c.jpg", SortOrder: 3},
			{URL: "a.jpg", SortOrder: 1},
			{URL: "b.jpg", SortOrder: 2},
		}, "")

		if diff := cmp.Diff([]string{"a.jpg", "b.jpg", "c.jpg"}, p.ImageURLs()); diff != "" {
			t.Errorf("image order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("falls back to legacy image URL", func(t *testing.T) {
		p := reconstruct(nil, "legacy.jpg")
		assert.Equal(t, []string{"legacy.jpg"}, p.ImageURLs())
	})

	t.Run("no images at all", func(t *testing.T) {
		p := reconstruct(nil, "")
		assert.Empty(t, p.ImageURLs())
	})
}

func TestPlaceSnapshot(t *testing.T) {
	p := reconstruct([]place.Image{{URL: "a.jpg", SortOrder: 1}}, "")
	snap := p.Snapshot()

	assert.Equal(t, int64(10), snap.PlaceID)
	assert.Equal(t, "City Museum", snap.Name)
	assert.Equal(t, int64(50000), snap.Price.Minor())
	assert.Equal(t, "a.jpg", snap.ThumbnailURL)
}

func TestValidateMapsURL(t *testing.T) {
	valid := []string{
		"",
		"https://maps.google.com/?q=central+park",
		"https://www.google.com/maps/place/xyz",
		"https://goo.gl/maps/abc123",
		"https://maps.app.goo.gl/abc123",
	}
	for _, u := range valid {
		assert.NoError(t, place.ValidateMapsURL(u), "url: %q", u)
	}

	invalid := []string{
		"https://example.com/maps",
		"https://www.google.com/search?q=maps",
		"ftp://maps.google.com/x",
		"not a url at all ://",
	}
	for _, u := range invalid {
		assert.ErrorIs(t, place.ValidateMapsURL(u), place.ErrUnrecognizedMapsURL, "url: %q", u)
	}
}

func TestNewListing(t *testing.T) {
	listing, err := place.NewListing(
		"  Fort Museum ", "A restored hilltop fort.", "Hyderabad", "9am-6pm",
		50000, "", "https://maps.google.com/?q=fort",
	)

	assert.NoError(t, err)
	assert.Equal(t, "Fort Museum", listing.Name(), "fields are trimmed")
	assert.Equal(t, int64(50000), listing.Price().Minor())
	assert.Equal(t, "https://maps.google.com/?q=fort", listing.MapsURL())
}

func TestNewListing_Invalid(t *testing.T) {
	cases := []struct {
		name                                  string
		lName, description, location, timings string
		priceMinor                            int64
		mapsURL                               string
		wantErr                               error
	}{
		{"single character name", "F", "A restored hilltop fort.", "Hyderabad", "9am-6pm", 100, "", place.ErrNameTooShort},
		{"short description", "Fort", "Too short", "Hyderabad", "9am-6pm", 100, "", place.ErrDescriptionTooShort},
		{"blank location", "Fort", "A restored hilltop fort.", "  ", "9am-6pm", 100, "", place.ErrLocationRequired},
		{"blank timings", "Fort", "A restored hilltop fort.", "Hyderabad", "", 100, "", place.ErrTimingsRequired},
		{"negative price", "Fort", "A restored hilltop fort.", "Hyderabad", "9am-6pm", -1, "", place.ErrPriceOutOfRange},
		{"price above cap", "Fort", "A restored hilltop fort.", "Hyderabad", "9am-6pm", place.MaxListingPriceMinor + 1, "", place.ErrPriceOutOfRange},
		{"non-maps link", "Fort", "A restored hilltop fort.", "Hyderabad", "9am-6pm", 100, "https://example.com/maps", place.ErrUnrecognizedMapsURL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := place.NewListing(tc.lName, tc.description, tc.location, tc.timings, tc.priceMinor, "", tc.mapsURL)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
