// Package httpx provides JSON request/response utilities.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the flat error envelope used by validation failures.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorMessageBody is the nested error envelope used for missing resources
// and generic server failures.
type ErrorMessageBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Error sends a flat {"error": msg} response.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{Error: msg})
}

// ErrorMessage sends a nested {"error": {"message": msg}} response.
func ErrorMessage(w http.ResponseWriter, status int, msg string) {
	var body ErrorMessageBody
	body.Error.Message = msg
	JSON(w, status, body)
}

// DecodeJSON decodes the JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
