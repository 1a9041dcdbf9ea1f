package request

type CreateReviewRequest struct {
	PlaceID int64  `json:"placeId" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}
