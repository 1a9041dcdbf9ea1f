package response

// StatusResponse acknowledges an operation with no payload of its own.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// AttemptStateResponse reports where a booking's checkout attempt
// stands, for the browser to poll after opening the provider UI.
type AttemptStateResponse struct {
	BookingID int64  `json:"bookingId"`
	State     string `json:"state"`
}
