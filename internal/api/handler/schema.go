package handler

// The storefront API wraps every response in a success flag. Errors carry a
// single message string; successful writes usually carry a human-readable
// message alongside the payload.

// errorResponse is the standard envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// messageResponse is the envelope for successful writes with no payload.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
