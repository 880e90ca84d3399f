package model

// APIResponse is the envelope returned by mutating endpoints and errors.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func NewSuccessResponse(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

func NewErrorResponse(errMsg string, details any) APIResponse {
	return APIResponse{Success: false, Error: errMsg, Details: details}
}
