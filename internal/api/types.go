package api

// GenericResponse is the uniform envelope for every non-data management
// response. Error is omitted on success.
type GenericResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SuccessResponse builds a success envelope.
func SuccessResponse(message string) GenericResponse {
	return GenericResponse{Success: true, Message: message}
}

// ErrorResponse builds a failure envelope.
func ErrorResponse(message, errMsg string) GenericResponse {
	return GenericResponse{Success: false, Message: message, Error: errMsg}
}

// CreateURLRequest is the request body for POST /api/url.
type CreateURLRequest struct {
	Short     string `json:"short"`
	TargetURL string `json:"target_url"`
}
