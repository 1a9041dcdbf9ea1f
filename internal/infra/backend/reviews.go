package backend

import (
	"context"

	"easebooking/internal/usecase/commands"
)

func (c *Client) CreateReview(ctx context.Context, token string, params commands.CreateReviewParams) error {
	body := map[string]any{
		"placeId": params.PlaceID,
		"rating":  params.Rating.Value(),
		"comment": params.Comment.String(),
	}
	return c.post(ctx, "/Reviews", token, body, nil)
}
