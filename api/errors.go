package api

import (
	"encoding/json"
	"net/http"
)

type ErrorCode string

const (
	EmptyBody            ErrorCode = "EmptyBody"
	InputValidationError ErrorCode = "InputValidationError"
	AlreadyRegistered    ErrorCode = "AlreadyRegistered"
	NotFound             ErrorCode = "NotFound"
	InvalidSignature     ErrorCode = "InvalidSignature"
	ServiceUnavailable   ErrorCode = "ServiceUnavailable"
	PaymentServiceError  ErrorCode = "PaymentServiceError"
	DeliveryFailed       ErrorCode = "DeliveryFailed"
	InternalError        ErrorCode = "InternalError"
)

type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding our own response types can't realistically fail; nothing
	// useful can be written if it somehow does.
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, Error{Code: code, Message: message})
}
