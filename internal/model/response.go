package model

// SuccessResponse is the envelope for successful API responses.
type SuccessResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the envelope for failed API responses. Code repeats
// the HTTP status so clients can switch on the body alone.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
