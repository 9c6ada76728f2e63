package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const (
	msgEmptyMessage       = "Empty message received"
	msgInvalidBody        = "Invalid request body"
	msgServiceUnavailable = "AI service temporarily unavailable"
)

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON decodes a single JSON value from the request body into dst. An empty body is
// not an error; it leaves dst zero so the caller's own validation reports the missing field.
func decodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}
