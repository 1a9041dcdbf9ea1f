package request

// UpsertPlaceRequest is the owner's listing form for both create and
// update. Price is in minor units; zero means a free listing. Gallery
// uploads are a separate flow, so only the legacy single image URL
// travels here.
type UpsertPlaceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Timings     string `json:"timings" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	ImageURL    string `json:"imageUrl"`
	MapsURL     string `json:"googleMapsUrl"`
}
