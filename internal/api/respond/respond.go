// Package respond shapes every JSON response the API produces: successful
// payloads are `{<entityKey>: value}` objects and failures are
// `{error: message}` with the matching status code.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

const contentType = "application/json"

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes `{error: message}` and logs the underlying cause from the
// request-scoped logger: 5xx at error level, 4xx at warn.
func Error(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil && r != nil {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(message)
	}

	JSON(w, status, map[string]string{"error": message})
}
