package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/adeqmish/ai-text-humanizer/internal/gateway"
)

// Humanizer is the gateway as seen by the HTTP layer.
type Humanizer interface {
	Configured() bool
	ConfigFailure() gateway.Result
	Humanize(ctx context.Context, text string) gateway.Result
}

const msgInvalidText = `Invalid request: "text" parameter is required and must be a string.`

// humanizeRequest uses a pointer so a missing field can be told apart
// from an empty one; a non-string value fails decoding.
type humanizeRequest struct {
	Text *string `json:"text"`
}

type humanizeResponse struct {
	HumanizedText string `json:"humanizedText"`
}

func Humanize(h Humanizer, maxTextLength int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
			return
		}

		// Checked before the body so an unconfigured server never does
		// any work on the request.
		if !h.Configured() {
			res := h.ConfigFailure()
			writeError(w, res.Failure.Status, res.Failure.Message, res.Failure.Details)
			return
		}

		var req humanizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large", nil)
				return
			}
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				writeError(w, http.StatusBadRequest, msgInvalidText, nil)
				return
			}
			writeError(w, http.StatusBadRequest, "Invalid request: malformed JSON body.", nil)
			return
		}

		if req.Text == nil || *req.Text == "" {
			writeError(w, http.StatusBadRequest, msgInvalidText, nil)
			return
		}
		if n := utf8.RuneCountInString(*req.Text); n > maxTextLength {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: text too long: %d characters (max %d).", n, maxTextLength), nil)
			return
		}

		res := h.Humanize(r.Context(), *req.Text)
		if !res.OK() {
			writeError(w, res.Failure.Status, res.Failure.Message, res.Failure.Details)
			return
		}

		writeJSON(w, http.StatusOK, humanizeResponse{HumanizedText: res.Text})
	}
}
