package dto

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Message string `json:"message"`
	Status  bool   `json:"status"`
	Data    any    `json:"data,omitempty"`
}

// OK builds a success envelope with an optional payload.
func OK(message string, data any) APIResponse {
	return APIResponse{Message: message, Status: true, Data: data}
}

// Fail builds a failure envelope.
func Fail(message string) APIResponse {
	return APIResponse{Message: message, Status: false}
}
