package handler

import (
	"net/http"
)

type providerStatus struct {
	Model      string `json:"model"`
	Configured bool   `json:"configured"`
	Reason     string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string         `json:"status"`
	Provider providerStatus `json:"provider"`
}

// Health reports liveness plus whether the provider credential is loaded.
// The server is alive either way, so the status code is always 200.
func Health(h Humanizer, model string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := providerStatus{Model: model, Configured: h.Configured()}
		if !s.Configured {
			s.Reason = "no API key"
		}
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Provider: s})
	}
}
