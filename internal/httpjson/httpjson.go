// Package httpjson writes JSON bodies and the service's {"error","code"}
// error envelope.
package httpjson

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Stable machine-readable error codes.
const (
	CodeNotFound           = "not_found"
	CodeMethodNotAllowed   = "method_not_allowed"
	CodeInvalidRequestBody = "invalid_request_body"
	CodeValidationFailed   = "validation_failed"
	CodeInvalidQuery       = "invalid_query"
	CodeInvalidDate        = "invalid_date"
	CodeDayUnavailable     = "day_unavailable"
	CodeVehicleNotFound    = "vehicle_not_found"
	CodeUnknownSort        = "unknown_sort"
	CodeUnauthorized       = "unauthorized"
	CodeInvalidToken       = "invalid_token"
	CodeTokenExpired       = "token_expired"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAccountInactive    = "account_inactive"
	CodeEmailTaken         = "email_taken"
	CodeForbidden          = "forbidden"
	CodeRateLimited        = "rate_limited"
	CodeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("Failed to encode response")
	}
}

// WriteError writes the error envelope.
func WriteError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
