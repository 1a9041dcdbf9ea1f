package backend

import (
	"context"
	"fmt"

	"easebooking/internal/domain/place"
)

func (c *Client) ListPlaces(ctx context.Context, token string) ([]*place.Place, error) {
	var payload []placePayload
	if err := c.get(ctx, "/Places", token, &payload); err != nil {
		return nil, err
	}
	return placesToDomain(payload), nil
}

func (c *Client) GetPlace(ctx context.Context, token string, placeID int64) (*place.Place, error) {
	var payload placePayload
	if err := c.get(ctx, fmt.Sprintf("/Places/%d", placeID), token, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// ListMyPlaces returns the listings owned by the calling account.
func (c *Client) ListMyPlaces(ctx context.Context, token string) ([]*place.Place, error) {
	var payload []placePayload
	if err := c.get(ctx, "/Places/my", token, &payload); err != nil {
		return nil, err
	}
	return placesToDomain(payload), nil
}

// CreatePlace publishes a new listing and returns the id the backend
// assigned to it.
func (c *Client) CreatePlace(ctx context.Context, token string, listing place.Listing) (int64, error) {
	var created struct {
		PlaceID int64 `json:"placeId"`
	}
	if err := c.post(ctx, "/Places", token, listingBody(listing), &created); err != nil {
		return 0, err
	}
	return created.PlaceID, nil
}

func (c *Client) UpdatePlace(ctx context.Context, token string, placeID int64, listing place.Listing) error {
	return c.put(ctx, fmt.Sprintf("/Places/%d", placeID), token, listingBody(listing), nil)
}

func listingBody(listing place.Listing) map[string]any {
	return map[string]any{
		"name":          listing.Name(),
		"description":   listing.Description(),
		"location":      listing.Location(),
		"timings":       listing.Timings(),
		"price":         listing.Price().Minor(),
		"imageUrl":      listing.ImageURL(),
		"googleMapsUrl": listing.MapsURL(),
	}
}

func placesToDomain(payload []placePayload) []*place.Place {
	places := make([]*place.Place, 0, len(payload))
	for _, p := range payload {
		places = append(places, p.toDomain())
	}
	return places
}
