package payments

import "fmt"

type ErrorReason string

const (
	REASON_GATEWAY_FAILURE ErrorReason = "GATEWAY_FAILURE"
	REASON_MALFORMED_INPUT ErrorReason = "MALFORMED_INPUT"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newPaymentsError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewGatewayFailureError(message string, cause error) *Error {
	return newPaymentsError(REASON_GATEWAY_FAILURE, message, cause)
}

func NewMalformedInputError(message string) *Error {
	return newPaymentsError(REASON_MALFORMED_INPUT, message, nil)
}
