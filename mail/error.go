package mail

import "fmt"

type ErrorReason string

const (
	REASON_DELIVERY_FAILED ErrorReason = "DELIVERY_FAILED"
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

func NewDeliveryFailedError(message string, cause error) *Error {
	return &Error{
		Reason:  REASON_DELIVERY_FAILED,
		Message: message,
		Cause:   cause,
	}
}
