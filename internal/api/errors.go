package api

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given HTTP status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes an error envelope with the given HTTP status code.
func WriteError(w http.ResponseWriter, status int, message, errMsg string) {
	WriteJSON(w, status, ErrorResponse(message, errMsg))
}
