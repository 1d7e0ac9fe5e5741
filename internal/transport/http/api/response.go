// Package api shapes every JSON body the transport writes. A response
// carries either data or an error, never both, and echoes the request id so
// a client report can be matched against the server log.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the machine-readable half of a failure; Code is stable for
// clients, Message is for humans.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Data      any        `json:"data,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("response write failed", "err", err, "requestId", body.RequestID)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	write(w, http.StatusOK, envelope{Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	write(w, http.StatusCreated, envelope{Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	write(w, status, envelope{Error: &ErrorBody{Code: code, Message: message}, RequestID: requestID})
}
