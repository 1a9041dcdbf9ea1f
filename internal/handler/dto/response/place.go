package response

// PlaceCreatedResponse returns the id of a freshly published listing
// so the browser can follow up with image uploads.
type PlaceCreatedResponse struct {
	PlaceID int64 `json:"placeId"`
}
