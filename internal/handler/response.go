package handler

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string, details any) {
	writeJSON(w, code, errorResponse{Error: errorBody{Message: msg, Details: details}})
}

// WriteError writes a failure body in the API's error shape.
// Shared with middleware so every error response looks the same.
func WriteError(w http.ResponseWriter, code int, msg string) {
	writeError(w, code, msg, nil)
}
