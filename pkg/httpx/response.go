package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Encoding errors are
// dropped; the status line has already been sent.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Error: message})
}

// ValidationError writes a 422 with per-field messages:
// {"error": "Validation failed", "fields": {"price": "..."}}.
func ValidationError(w http.ResponseWriter, fields map[string]string) {
	JSON(w, http.StatusUnprocessableEntity, errorBody{Error: "Validation failed", Fields: fields})
}

type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SafeError returns the message to show a client. In production 5xx messages
// are replaced with the status text.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
