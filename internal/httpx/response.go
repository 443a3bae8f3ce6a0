package httpx

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Ack is the body returned by successful deletes and similar
// side-effect-only operations.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(payload)
	if err != nil {
		// avoid writing partial JSON
		http.Error(w, `{"error":"encode_error"}`, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Error: msg, Details: details})
}

// Decode reads a JSON request body into dst and reports whether it
// succeeded, writing the 400 response itself on failure.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return false
	}
	return true
}
