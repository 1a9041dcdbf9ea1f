package request

// CreateBookingRequest starts a payment attempt for a place visit.
// VisitDate is a calendar day, not a timestamp.
type CreateBookingRequest struct {
	PlaceID   int64  `json:"placeId" binding:"required"`
	VisitDate string `json:"visitDate" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}
