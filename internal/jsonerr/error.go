// Package jsonerr writes the JSON response shapes used by the
// HTTP endpoints this SDK generates (channel auth, webhooks).
package jsonerr

import (
	"encoding/json"
	"net/http"
)

// Error writes structured error information to w using JSON encoding.
// The given status code is used if it is non-zero, otherwise it
// is set to 500.
func Error(w http.ResponseWriter, err error, code int) {
	if code == 0 {
		code = http.StatusInternalServerError
	}

	type errBody struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	data, _ := json.MarshalIndent(&errBody{
		Code:    http.StatusText(code),
		Message: err.Error(),
	}, "", "  ")

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// OK writes payload to w as a JSON document with a 200 status.
// Marshalling failures degrade to an Error response rather than a
// half-written body.
func OK(w http.ResponseWriter, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		Error(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
