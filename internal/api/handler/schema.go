package handler

// errorResponse is the JSON envelope produced by the central error handler.
type errorResponse struct {
	Error string `json:"error" example:"room not found"`
}
