package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxRequestBodySize caps JSON request bodies read by [DecodeJSON].
const MaxRequestBodySize = 1 << 20

// ErrInvalidJSON is returned by [DecodeJSON] for bodies that are not a single
// well-formed JSON value of the expected shape.
var ErrInvalidJSON = errors.New("invalid JSON body")

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ErrorResponse is the JSON body of every error answer.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError writes {"error": message} with statusCode.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Error: message}, statusCode)
}

// DecodeJSON reads one JSON value from r.Body into v. Unknown fields,
// trailing data and bodies over [MaxRequestBodySize] are rejected with
// [ErrInvalidJSON].
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}

	return nil
}
