package types

// ErrorResponse is the generic error body returned by non-contact endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// StatusResponse is a simple status acknowledgment body.
type StatusResponse struct {
	Status string `json:"status"`
}
