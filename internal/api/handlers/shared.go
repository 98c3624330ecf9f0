package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies. Imports carry the whole operation history.
const maxBodyBytes = 8 << 20

// parseJSON decodes the request body into T. Unknown fields are ignored; an empty body
// or trailing data is an error.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return v, errors.New("request body is empty")
		}
		return v, err
	}
	if dec.More() {
		return v, errors.New("unexpected data after JSON body")
	}
	return v, nil
}

// readBody reads the raw request body up to maxBodyBytes.
func readBody(r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
}
