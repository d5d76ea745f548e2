package registrant

import "fmt"

type ErrorReason string

const (
	REASON_INVALID_INPUT                   ErrorReason = "INVALID_INPUT"
	REASON_REGISTRANT_ALREADY_EXISTS       ErrorReason = "REGISTRANT_ALREADY_EXISTS"
	REASON_REGISTRANT_DOES_NOT_EXIST       ErrorReason = "REGISTRANT_DOES_NOT_EXIST"
	REASON_STORE_UNAVAILABLE               ErrorReason = "STORE_UNAVAILABLE"
	REASON_ORDER_CREATION_FAILED           ErrorReason = "ORDER_CREATION_FAILED"
	REASON_INVALID_SIGNATURE               ErrorReason = "INVALID_SIGNATURE"
	REASON_FAILED_TO_WRITE                 ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH                 ErrorReason = "FAILED_TO_FETCH"
	REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL ErrorReason = "FAILED_TO_TRANSLATE_TO_DB_MODEL"
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

func newRegistrantError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidInputError(message string) *Error {
	return newRegistrantError(REASON_INVALID_INPUT, message, nil)
}

func NewRegistrantAlreadyExistsError(message string, cause error) *Error {
	return newRegistrantError(REASON_REGISTRANT_ALREADY_EXISTS, message, cause)
}

func NewRegistrantDoesNotExistError(message string, cause error) *Error {
	return newRegistrantError(REASON_REGISTRANT_DOES_NOT_EXIST, message, cause)
}

func NewStoreUnavailableError(message string, cause error) *Error {
	return newRegistrantError(REASON_STORE_UNAVAILABLE, message, cause)
}

func NewOrderCreationFailedError(message string, cause error) *Error {
	return newRegistrantError(REASON_ORDER_CREATION_FAILED, message, cause)
}

func NewInvalidSignatureError(message string) *Error {
	return newRegistrantError(REASON_INVALID_SIGNATURE, message, nil)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrantError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrantError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewFailedToTranslateToDBModelError(message string, cause error) *Error {
	return newRegistrantError(REASON_FAILED_TO_TRANSLATE_TO_DB_MODEL, message, cause)
}
